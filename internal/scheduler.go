package internal

import "github.com/cockroachdb/errors"

// Scheduler drains staled effects in first-enqueued order.
type Scheduler struct {
	queue   []*Effect
	settled []func()

	flushing bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Enqueue adds an effect to the pending flush set. An effect already queued
// stays at its original position.
func (s *Scheduler) Enqueue(e *Effect) {
	if e.queued {
		return
	}

	e.queued = true
	s.queue = append(s.queue, e)
}

// OnSettled registers a one-shot callback for when the next flush finishes.
func (s *Scheduler) OnSettled(fn func()) {
	s.settled = append(s.settled, fn)
}

// Flush drains the pending effect set. Effects queued while flushing run in
// the same flush. A panicking effect is handed to the nearest owner with an
// error listener; unhandled failures are collected and re-raised joined once
// the flush completes, so siblings still run.
func (s *Scheduler) Flush(r *Runtime) {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	var errs []error

	for len(s.queue) > 0 || len(s.settled) > 0 {
		for len(s.queue) > 0 {
			e := s.queue[0]
			s.queue = s.queue[1:]
			e.queued = false

			if e.disposed {
				continue
			}

			if v := s.runEffect(r, e); v != nil {
				if !e.scope.catch(v) {
					errs = append(errs, asError(v))
				}
			}
		}

		settled := s.settled
		s.settled = nil
		for _, fn := range settled {
			fn()
		}
	}

	if len(errs) > 0 {
		panic(errors.Join(errs...))
	}
}

// runEffect runs a single effect, returning the recovered panic value if any.
func (s *Scheduler) runEffect(r *Runtime, e *Effect) (failure any) {
	defer func() {
		failure = recover()
	}()

	e.run(r)
	return nil
}
