package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks(t *testing.T) {
	t.Run("Same id is exclusive", func(t *testing.T) {
		locks := newSessionLocks()
		counter := 0

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				unlock := locks.lock("a")
				counter++
				unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, counter)
		assert.Zero(t, locks.size())
	})

	t.Run("Different ids do not block each other", func(t *testing.T) {
		locks := newSessionLocks()

		unlockA := locks.lock("a")
		unlockB := locks.lock("b")

		assert.Equal(t, 2, locks.size())

		unlockA()
		unlockB()

		assert.Zero(t, locks.size())
	})
}
