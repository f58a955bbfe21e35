package internal

// Runtime is the single mutable slot holding all graph state for one logical
// thread of execution: the evaluation stack, the flush queue, the batch
// depth and the active owner.
type Runtime struct {
	tracker   *Tracker
	scheduler *Scheduler
	batcher   *Batcher

	currentOwner *Owner
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker:   NewTracker(),
		scheduler: NewScheduler(),
		batcher:   NewBatcher(),
	}
}

// Schedule flushes pending effects unless a batch is in progress.
func (r *Runtime) Schedule() {
	if r.batcher.IsBatching() {
		return
	}

	r.Flush()
}

func (r *Runtime) Flush() {
	r.scheduler.Flush(r)
}

// Untrack runs fn with dependency registration suppressed.
func (r *Runtime) Untrack(fn func()) {
	r.tracker.Untracked(fn)
}

// OnCleanup registers fn with the active owner; without one it is dropped.
func (r *Runtime) OnCleanup(fn func()) {
	if o := r.currentOwner; o != nil {
		o.OnCleanup(fn)
	}
}

// OnSettled registers a one-shot callback for when the next flush finishes.
func (r *Runtime) OnSettled(fn func()) {
	r.scheduler.OnSettled(fn)
}
