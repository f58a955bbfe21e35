package internal

type Signal struct {
	node

	value  any
	equals EqualFunc
}

func (r *Runtime) NewSignal(initial any, equals EqualFunc) *Signal {
	if equals == nil {
		equals = defaultEquals
	}

	return &Signal{
		value:  initial,
		equals: equals,
	}
}

// Read returns the current value, registering a dependency when called from
// within an evaluating computed or effect.
func (s *Signal) Read() any {
	GetRuntime().tracker.Read(s)
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal) Peek() any {
	return s.value
}

// Write stores a new value and notifies dependents. Writing a value equal to
// the current one under the signal's equality is a no-op.
func (s *Signal) Write(v any) {
	if s.equals(s.value, v) {
		return
	}

	r := GetRuntime()

	s.value = v
	s.version++
	s.markSubscribers(r)

	r.Schedule()
}

// signals are never stale relative to anything
func (s *Signal) refresh(*Runtime) {}
