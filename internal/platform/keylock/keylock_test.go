package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock(1)
			defer kl.Unlock(1)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyLock_IndependentKeys(t *testing.T) {
	kl := New()

	kl.Lock(1)
	done := make(chan struct{})
	go func() {
		kl.Lock(2)
		kl.Unlock(2)
		close(done)
	}()
	<-done
	kl.Unlock(1)
}

func TestKeyLock_EntryDroppedAfterRelease(t *testing.T) {
	kl := New()

	kl.Lock(7)
	kl.Unlock(7)

	kl.mu.Lock()
	defer kl.mu.Unlock()
	assert.Empty(t, kl.locks)
}
