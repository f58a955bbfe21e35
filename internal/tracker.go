package internal

import "slices"

// source records a dependency together with the version observed when the
// observer last completed an evaluation.
type source struct {
	dep     Dependable
	version uint64
}

// observer is a node that collects dependencies while evaluating
// (computeds and effects).
type observer interface {
	Subscriber
	sourceList() *[]source
}

// frame is one level of the evaluation stack.
type frame struct {
	owner   observer
	pending []Dependable
}

// Tracker maintains the evaluation stack and registers edges on reads.
type Tracker struct {
	tracking bool
	stack    []*frame
}

func NewTracker() *Tracker {
	return &Tracker{tracking: true}
}

func (t *Tracker) active() *frame {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Read registers dep as a pending source of the currently evaluating
// observer. Reading the same dependency twice registers one edge.
func (t *Tracker) Read(dep Dependable) {
	if !t.tracking {
		return
	}

	f := t.active()
	if f == nil {
		return
	}

	if !slices.Contains(f.pending, dep) {
		f.pending = append(f.pending, dep)
	}
}

// Capture evaluates fn as obs, collecting every dependency it reads. On
// completion the observer's edges are diffed against the previous run:
// dropped sources are unsubscribed, new ones subscribed, and each source's
// version is recorded. On panic the pending set is discarded so the edges
// still describe the last completed evaluation.
func (t *Tracker) Capture(obs observer, fn func()) {
	f := &frame{owner: obs}
	t.stack = append(t.stack, f)

	prevTracking := t.tracking
	t.tracking = true

	completed := false
	defer func() {
		t.tracking = prevTracking
		t.stack = t.stack[:len(t.stack)-1]

		if completed {
			t.commit(obs, f.pending)
		}
	}()

	fn()
	completed = true
}

// commit replaces obs's sources with the pending set, adjusting
// subscriptions by diff.
func (t *Tracker) commit(obs observer, pending []Dependable) {
	prev := obs.sourceList()

	for _, old := range *prev {
		if !slices.Contains(pending, old.dep) {
			old.dep.removeSubscriber(obs)
		}
	}

	next := make([]source, 0, len(pending))
	for _, dep := range pending {
		if !hasSource(*prev, dep) {
			dep.addSubscriber(obs)
		}
		next = append(next, source{dep: dep, version: dep.currentVersion()})
	}

	*prev = next
}

func hasSource(list []source, dep Dependable) bool {
	for _, s := range list {
		if s.dep == dep {
			return true
		}
	}
	return false
}

// clearSources severs every edge the observer holds.
func clearSources(obs observer) {
	list := obs.sourceList()
	for _, s := range *list {
		s.dep.removeSubscriber(obs)
	}
	*list = nil
}

// Untracked runs fn with dependency registration suppressed.
func (t *Tracker) Untracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}
