package internal

// Effect is a side-effecting subscriber that re-runs whenever one of its
// tracked sources changes. The body may return a cleanup, called before the
// next run and on disposal.
type Effect struct {
	fn      func() func()
	sources []source

	// scope holds cleanups and nested nodes created by the body; it is reset
	// between runs and torn down for good on disposal
	scope *Owner

	queued   bool
	disposed bool
}

func (r *Runtime) NewEffect(fn func() func()) *Effect {
	e := &Effect{
		fn:    fn,
		scope: &Owner{parent: r.currentOwner},
	}

	if r.currentOwner != nil {
		r.currentOwner.adopt(e)
	}

	// seed subscriptions with one synchronous run
	e.run(r)

	return e
}

func (e *Effect) sourceList() *[]source { return &e.sources }

func (e *Effect) stale(r *Runtime) {
	if e.disposed {
		return
	}

	r.scheduler.Enqueue(e)
}

func (e *Effect) run(r *Runtime) {
	if e.disposed {
		return
	}

	// tear down whatever the previous run set up
	e.scope.reset()

	prev := r.currentOwner
	r.currentOwner = e.scope
	defer func() { r.currentOwner = prev }()

	r.tracker.Capture(e, func() {
		if cleanup := e.fn(); cleanup != nil {
			e.scope.OnCleanup(cleanup)
		}
	})
}

// Dispose runs pending cleanups, severs every subscription and prevents any
// future run. Idempotent.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	clearSources(e)
	e.scope.Dispose()
}
