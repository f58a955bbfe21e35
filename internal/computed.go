package internal

type Computed struct {
	node

	compute func() any
	value   any
	sources []source

	equals EqualFunc

	initialized bool
	dirty       bool
	evaluating  bool
	retry       bool
	disposed    bool

	// static computeds subscribe to a fixed dependency list and run their
	// compute untracked
	static bool
}

func (r *Runtime) NewComputed(compute func() any, equals EqualFunc) *Computed {
	if equals == nil {
		equals = defaultEquals
	}

	c := &Computed{
		compute: compute,
		equals:  equals,
		dirty:   true,
	}

	// computeds created inside an owner scope are torn down with it
	if o := r.currentOwner; o != nil {
		o.adopt(c)
	}

	return c
}

// NewComputedWithDeps creates a computed subscribed to exactly the listed
// dependencies, bypassing automatic tracking.
func (r *Runtime) NewComputedWithDeps(compute func() any, equals EqualFunc, deps ...Dependable) *Computed {
	c := r.NewComputed(compute, equals)
	c.static = true

	c.sources = make([]source, 0, len(deps))
	for _, dep := range deps {
		if !hasSource(c.sources, dep) {
			dep.addSubscriber(c)
			c.sources = append(c.sources, source{dep: dep, version: dep.currentVersion()})
		}
	}

	return c
}

// Read validates the computed and returns its value, registering a
// dependency when called from within an evaluating computed or effect.
func (c *Computed) Read() any {
	r := GetRuntime()

	r.tracker.Read(c)
	c.refresh(r)

	return c.value
}

// Peek validates and returns the value without registering a dependency.
func (c *Computed) Peek() any {
	r := GetRuntime()

	r.tracker.Untracked(func() {
		c.refresh(r)
	})

	return c.value
}

func (c *Computed) sourceList() *[]source { return &c.sources }

// stale marks the computed possibly outdated and forwards the mark. An
// already dirty node stops the walk so wide diamonds are marked once.
func (c *Computed) stale(r *Runtime) {
	if c.dirty || c.disposed {
		return
	}

	c.dirty = true
	c.markSubscribers(r)
}

// refresh recomputes the value only if a source actually changed since the
// last completed run.
func (c *Computed) refresh(r *Runtime) {
	if c.disposed {
		panic(disposedError("computed"))
	}
	if c.evaluating {
		panic(cycleError("computed"))
	}

	switch {
	case !c.initialized || c.retry:
		c.recompute(r)
	case c.dirty:
		if c.sourcesChanged(r) {
			c.recompute(r)
		} else {
			c.dirty = false
		}
	}
}

// sourcesChanged validates each source bottom-up, in the order they were
// read, and reports whether any produced a new value since this node last
// ran.
func (c *Computed) sourcesChanged(r *Runtime) bool {
	for _, s := range c.sources {
		s.dep.refresh(r)

		if s.dep.currentVersion() != s.version {
			return true
		}
	}

	return false
}

func (c *Computed) recompute(r *Runtime) {
	c.evaluating = true
	c.retry = true // cleared only when the run completes

	defer func() { c.evaluating = false }()

	var value any
	run := func() { value = c.compute() }

	if c.static {
		r.tracker.Untracked(run)
		c.snapshotSources(r)
	} else {
		r.tracker.Capture(c, run)
	}

	c.retry = false
	c.dirty = false

	if !c.initialized || !c.equals(c.value, value) {
		c.value = value
		c.version++
	}
	c.initialized = true
}

// snapshotSources refreshes the static dependency list and records the
// versions the last run observed.
func (c *Computed) snapshotSources(r *Runtime) {
	for i := range c.sources {
		c.sources[i].dep.refresh(r)
		c.sources[i].version = c.sources[i].dep.currentVersion()
	}
}

// Dispose severs the computed from the graph. Further reads panic with
// ErrNodeDisposed. Idempotent.
func (c *Computed) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	clearSources(c)
	c.subs = nil
}
