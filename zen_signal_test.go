package zen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewSignal(0)
		assert.Equal(t, 0, count.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
	})

	t.Run("zero values", func(t *testing.T) {
		err := NewSignal[error](nil)
		assert.Nil(t, err.Read())

		err.Write(errors.New("oops"))
		assert.EqualError(t, err.Read(), "oops")

		err.Write(nil)
		assert.Nil(t, err.Read())
	})

	t.Run("equal write is a no-op", func(t *testing.T) {
		log := []int{}

		count := NewSignal(1)

		NewEffect(func() {
			log = append(log, count.Read())
		})

		count.Write(1) // unchanged, no effect run
		count.Write(2)

		assert.Equal(t, []int{1, 2}, log)
	})

	t.Run("custom equality", func(t *testing.T) {
		log := []int{}

		sameParity := func(a, b int) bool { return a%2 == b%2 }
		count := NewSignal(3, WithEquals(sameParity))

		NewEffect(func() {
			log = append(log, count.Read())
		})

		count.Write(5) // same parity, no update
		count.Write(6)

		assert.Equal(t, []int{3, 6}, log)
	})

	t.Run("uncomparable values with custom equality", func(t *testing.T) {
		items := NewSignal([]int{1}, WithEquals(func(a, b []int) bool {
			return len(a) == len(b)
		}))

		items.Write([]int{1, 2})
		assert.Equal(t, []int{1, 2}, items.Read())

		items.Write([]int{3, 4}) // same length, ignored
		assert.Equal(t, []int{1, 2}, items.Read())
	})
}
