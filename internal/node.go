package internal

import "slices"

// Dependable is anything an observer can read and subscribe to
// (signals and computeds).
type Dependable interface {
	// refresh brings the node's value up to date with its sources.
	refresh(r *Runtime)

	// currentVersion is bumped each time the observable value changes.
	currentVersion() uint64

	addSubscriber(s Subscriber)
	removeSubscriber(s Subscriber)
}

// Subscriber is anything notified when a dependency may have changed
// (computeds and effects).
type Subscriber interface {
	// stale marks the subscriber as possibly outdated.
	stale(r *Runtime)
}

// node carries the version and subscriber bookkeeping shared by signals and computeds.
type node struct {
	version uint64
	subs    []Subscriber
}

func (n *node) currentVersion() uint64 { return n.version }

func (n *node) addSubscriber(s Subscriber) {
	if !slices.Contains(n.subs, s) {
		n.subs = append(n.subs, s)
	}
}

func (n *node) removeSubscriber(s Subscriber) {
	if i := slices.Index(n.subs, s); i != -1 {
		n.subs = slices.Delete(n.subs, i, i+1)
	}
}

// markSubscribers notifies every current subscriber, in subscription order.
func (n *node) markSubscribers(r *Runtime) {
	// clonning to avoid mutation during iteration
	for _, s := range slices.Clone(n.subs) {
		s.stale(r)
	}
}

// EqualFunc reports whether two values are the same under a node's
// configured equality. The default is plain identity.
type EqualFunc func(a, b any) bool

func defaultEquals(a, b any) bool {
	return a == b
}
