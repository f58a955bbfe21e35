package zen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("does not track reads", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			c := Untrack(count.Read)
			log = append(log, fmt.Sprintf("effect %d", c))
		})

		count.Write(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})

	t.Run("resumes tracking after", func(t *testing.T) {
		log := []string{}

		a := NewSignal(0)
		b := NewSignal(0)

		NewEffect(func() {
			ignored := Untrack(a.Read)
			log = append(log, fmt.Sprintf("effect %d %d", ignored, b.Read()))
		})

		a.Write(1) // untracked, no run
		b.Write(2)

		assert.Equal(t, []string{
			"effect 0 0",
			"effect 1 2",
		}, log)
	})
}

func TestPeek(t *testing.T) {
	t.Run("signal peek does not track", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("effect %d", count.Peek()))
		})

		count.Write(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})

	t.Run("computed peek validates without tracking", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputed(func() int { return count.Read() * 2 })

		NewEffect(func() {
			log = append(log, fmt.Sprintf("effect %d", double.Peek()))
		})

		count.Write(5) // effect does not depend on double

		assert.Equal(t, []string{"effect 2"}, log)
		assert.Equal(t, 10, double.Peek())
	})
}
