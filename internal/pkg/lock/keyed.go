// Package lock provides a mutex registry keyed by arbitrary strings. The
// transaction workflow uses it to serialize the read-validate-write sequence
// per (customer, fund) pair.
package lock

import "sync"

// KeyedMutex serializes critical sections per key. Mutexes are created
// lazily and kept for the lifetime of the registry; the key space here
// (customer x fund) is small enough that no eviction is needed.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex creates an empty mutex registry
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for the given key, creating it if needed
func (k *KeyedMutex) Lock(key string) {
	k.get(key).Lock()
}

// Unlock releases the mutex for the given key
func (k *KeyedMutex) Unlock(key string) {
	k.get(key).Unlock()
}

func (k *KeyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
