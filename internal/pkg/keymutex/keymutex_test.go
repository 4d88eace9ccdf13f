package keymutex_test

import (
	"sync"
	"testing"

	"restaurant/internal/pkg/keymutex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := keymutex.New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			km.Lock("2024-06-01")
			defer km.Unlock("2024-06-01")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyMutex_IndependentKeys(t *testing.T) {
	km := keymutex.New()

	// Holding one key must not block another.
	km.Lock("2024-06-01")
	done := make(chan struct{})
	go func() {
		km.Lock("2024-06-02")
		km.Unlock("2024-06-02")
		close(done)
	}()
	<-done
	km.Unlock("2024-06-01")
}

func TestKeyMutex_PrunesReleasedEntries(t *testing.T) {
	km := keymutex.New()

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c"} {
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(k string) {
				defer wg.Done()
				km.Lock(k)
				km.Unlock(k)
			}(key)
		}
	}
	wg.Wait()

	assert.Equal(t, 0, km.Len())
}

func TestKeyMutex_UnlockWithoutLockPanics(t *testing.T) {
	km := keymutex.New()

	require.Panics(t, func() {
		km.Unlock("never-locked")
	})
}
