package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerCommitDiff(t *testing.T) {
	r := GetRuntime()

	a := r.NewSignal(1, nil)
	b := r.NewSignal(2, nil)

	useA := true
	c := r.NewComputed(func() any {
		if useA {
			return a.Read()
		}
		return b.Read()
	}, nil)

	assert.Equal(t, 1, c.Read())
	assert.Len(t, a.subs, 1)
	assert.Empty(t, b.subs)

	// the untaken branch's edge moves over on the next evaluation
	useA = false
	a.Write(10)
	assert.Equal(t, 2, c.Read())
	assert.Empty(t, a.subs)
	assert.Len(t, b.subs, 1)
}

func TestTrackerIdempotentEdges(t *testing.T) {
	r := GetRuntime()

	a := r.NewSignal(1, nil)

	c := r.NewComputed(func() any {
		return a.Read().(int) + a.Read().(int) // same source read twice
	}, nil)

	assert.Equal(t, 2, c.Read())
	assert.Len(t, a.subs, 1)
	assert.Len(t, c.sources, 1)
}

func TestTrackerRollbackOnPanic(t *testing.T) {
	r := GetRuntime()

	a := r.NewSignal(1, nil)
	b := r.NewSignal(2, nil)

	fail := false
	c := r.NewComputed(func() any {
		va := a.Read().(int)
		if fail {
			_ = b.Read()
			panic("late failure")
		}
		return va
	}, nil)

	assert.Equal(t, 1, c.Read())

	// a failed run must not replace the edges of the last completed one
	fail = true
	a.Write(10)
	assert.Panics(t, func() { c.Read() })
	assert.Len(t, a.subs, 1)
	assert.Empty(t, b.subs)
}

func TestSchedulerEnqueueDedup(t *testing.T) {
	s := NewScheduler()

	e := &Effect{scope: &Owner{}}
	s.Enqueue(e)
	s.Enqueue(e)

	assert.Len(t, s.queue, 1)
}
