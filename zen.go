// Package zen is a fine-grained reactive engine: signals hold mutable
// values, computeds derive cached values from them lazily, and effects run
// side effects whenever the sources they read change. Dependencies are
// discovered automatically on read, propagation is glitch-free across
// diamond-shaped graphs, and owners group effects and cleanups so whole
// scopes tear down atomically.
package zen

import "github.com/SylphxAI/zen-sub002/internal"

var (
	// ErrCyclicDependency marks panics raised when a node is read during its
	// own evaluation.
	ErrCyclicDependency = internal.ErrCyclicDependency

	// ErrNodeDisposed marks panics raised when a node is used after its
	// owning scope was torn down.
	ErrNodeDisposed = internal.ErrNodeDisposed
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Dependency is any node an explicit-dependency computed can subscribe to.
type Dependency interface {
	internalNode() internal.Dependable
}

// Readable is any node Subscribe can observe.
type Readable[T any] interface {
	Read() T
}

type signalOptions[T any] struct {
	equals func(a, b T) bool
}

type SignalOption[T any] func(*signalOptions[T])

// WithEquals overrides the signal's equality, used to decide whether a write
// actually changed the value. The default is ==, so types that are not
// comparable need this option.
func WithEquals[T any](equals func(a, b T) bool) SignalOption[T] {
	return func(o *signalOptions[T]) { o.equals = equals }
}

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates your tipical read/write signal.
func NewSignal[T any](initial T, opts ...SignalOption[T]) *Signal[T] {
	var cfg signalOptions[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	var equals internal.EqualFunc
	if cfg.equals != nil {
		eq := cfg.equals
		equals = func(a, b any) bool { return eq(as[T](a), as[T](b)) }
	}

	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial, equals),
	}
}

// Read the current value of the signal, tracking the dependency if within a reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Peek reads the current value without tracking, even while evaluating.
func (s *Signal[T]) Peek() T {
	return as[T](s.signal.Peek())
}

// Write a new value to the signal, triggering updates to any dependents.
// Writing a value equal to the current one is a no-op.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

func (s *Signal[T]) internalNode() internal.Dependable { return s.signal }

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a computed signal that derives its value from other
// signals (its a memo). The computation does not run until the first Read.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return compute()
		}, nil),
	}
}

// NewComputedWithDeps creates a computed subscribed to exactly the listed
// dependencies. Reads inside the computation are not tracked.
func NewComputedWithDeps[T any](compute func() T, deps ...Dependency) *Computed[T] {
	nodes := make([]internal.Dependable, len(deps))
	for i, d := range deps {
		nodes[i] = d.internalNode()
	}

	return &Computed[T]{
		internal.GetRuntime().NewComputedWithDeps(func() any {
			return compute()
		}, nil, nodes...),
	}
}

// Read the current value of the computed signal, tracking the dependency if within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

// Peek validates and reads the current value without tracking.
func (c *Computed[T]) Peek() T {
	return as[T](c.computed.Peek())
}

// Dispose severs the computed from the graph. Further reads panic with
// ErrNodeDisposed.
func (c *Computed[T]) Dispose() {
	c.computed.Dispose()
}

func (c *Computed[T]) internalNode() internal.Dependable { return c.computed }

type Effect struct {
	effect *internal.Effect
}

// NewEffect creates a reactive effect that runs the given function once
// immediately, then again whenever its dependencies change.
func NewEffect(fn func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(func() func() {
			fn()
			return nil
		}),
	}
}

// NewEffectWithCleanup is NewEffect for bodies returning their own cleanup,
// called before every re-run and on disposal.
func NewEffectWithCleanup(fn func() func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(fn),
	}
}

// Dispose runs pending cleanups and stops the effect for good.
func (e *Effect) Dispose() {
	e.effect.Dispose()
}

// NewBatch batches multiple signal writes into a single update cycle,
// instead of triggering updates after each write.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Batch runs fn like NewBatch and returns its result.
func Batch[R any](fn func() R) R {
	var result R
	internal.GetRuntime().NewBatch(func() { result = fn() })
	return result
}

// Subscribe runs listener with the node's current value immediately and
// after every change. The returned function stops the subscription.
func Subscribe[T any](src Readable[T], listener func(T)) (unsubscribe func()) {
	e := NewEffect(func() {
		listener(src.Read())
	})

	return e.Dispose
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers a function to be called when the current owner is disposed.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// OnSettled registers a function to be called once, after the next flush of
// effects finishes.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new reactive owner.
// An owner manages the lifecycle of reactive nodes created within its context.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner.
// Each reactive node created within the function will be a child of this owner,
// and will be disposed when owner.Dispose() is called on this owner.
func (o *Owner) Run(fn func() error) error { return o.owner.Run(fn) }

// Dispose this owner and all its children. Idempotent: cleanups run once.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Add a cleanup function to be called ONCE when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// Add a function to be called when a panic occurs within this owner.
// If no error listener is registered, the panic will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }

type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a new reactive context with an initial value.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{
		internal.GetRuntime().NewContext(initial),
	}
}

// Value retrieves the current value of the context,
// inheriting from parent owners if not set in the current owner.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// Set a new value for the context in the current owner.
func (c *Context[T]) Set(value T) {
	c.ctx.Set(value)
}
