// Package keymutex provides a registry of mutexes keyed by string.
// It serializes critical sections per key (e.g. per calendar date) without
// holding a single global lock, and prunes entries once no goroutine holds
// or waits on them so the registry does not grow without bound.
package keymutex

import "sync"

// KeyMutex is a concurrent registry of per-key mutexes.
// The zero value is not usable; create instances with New.
type KeyMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty KeyMutex registry.
func New() *KeyMutex {
	return &KeyMutex{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key, creating it on first use.
// Callers must pair every Lock with an Unlock for the same key.
func (k *KeyMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key and removes the registry entry once the
// last holder or waiter is gone.
func (k *KeyMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("keymutex: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// Len reports how many keys currently have a live entry.
func (k *KeyMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
