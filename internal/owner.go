package internal

import "slices"

type Disposable interface {
	Dispose()
}

// Owner is a hierarchical lifetime scope. Nodes created while an owner is
// active are torn down with it.
type Owner struct {
	parent   *Owner
	children []Disposable

	// cleanup functions, run in reverse registration order on disposal
	cleanups []func()

	// panic error handlers
	catchers []func(any)

	// context values bound to this owner
	context map[*Context]any

	disposed bool
}

func (r *Runtime) NewOwner() *Owner {
	o := &Owner{parent: r.currentOwner}

	if o.parent != nil {
		o.parent.adopt(o)
	}

	return o
}

// Run executes fn with this owner active, so nodes created inside are scoped
// to it. Panics are routed to the nearest OnError listener up the owner
// chain; without one they propagate as usual.
func (o *Owner) Run(fn func() error) (err error) {
	r := GetRuntime()

	defer func() {
		if v := recover(); v != nil {
			if !o.catch(v) {
				panic(v)
			}
		}
	}()

	prev := r.currentOwner
	r.currentOwner = o
	defer func() { r.currentOwner = prev }()

	return fn()
}

func (o *Owner) adopt(child Disposable) {
	o.children = append(o.children, child)
}

func (o *Owner) drop(child Disposable) {
	if i := slices.Index(o.children, child); i != -1 {
		o.children = slices.Delete(o.children, i, i+1)
	}
}

// Dispose tears down children depth-first, newest first, then runs this
// owner's own cleanups in reverse registration order. Idempotent: cleanups
// run exactly once however many times Dispose is called.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	o.reset()

	if o.parent != nil {
		o.parent.drop(o)
		o.parent = nil
	}
}

// reset tears down children and cleanups without marking the owner disposed.
// Effects reuse their scope between runs through this.
func (o *Owner) reset() {
	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.context = nil
}

// OnCleanup registers a function called once when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

// OnError registers a handler for panics raised within this owner's scope,
// including effects failing during a flush.
func (o *Owner) OnError(fn func(any)) {
	o.catchers = append(o.catchers, fn)
}

// catch hands v to the nearest owner (self included, walking up) with a
// registered error listener. Reports whether anyone took it.
func (o *Owner) catch(v any) bool {
	for cur := o; cur != nil; cur = cur.parent {
		if len(cur.catchers) == 0 {
			continue
		}

		for _, catcher := range cur.catchers {
			catcher(v)
		}
		return true
	}

	return false
}
