// Package keylock provides per-key mutual exclusion. It is used to serialize
// check-and-mutate sequences against the same book across concurrent requests.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyLock hands out a mutex per key. Entries are dropped once the last
// holder releases, so the map does not grow with the key space.
type KeyLock struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[int64]*entry)}
}

// Lock blocks until the lock for key is held by the caller.
func (k *KeyLock) Lock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for key. It must only be called by the current
// holder.
func (k *KeyLock) Unlock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keylock: unlock of unheld key")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
