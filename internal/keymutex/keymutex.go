// Package keymutex provides a mutex keyed by string, serializing writers of
// the same collection key without blocking unrelated keys.
package keymutex

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyMutex hands out one mutex per key on demand. Idle mutexes are dropped
// so the map does not grow with key churn.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New creates an empty KeyMutex.
func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*entry)}
}

// Lock acquires the mutex for key and returns the matching unlock func.
//
//	unlock := m.Lock("favorites_u1")
//	defer unlock()
func (m *KeyMutex) Lock(key string) func() {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		m.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(m.locks, key)
		}
		m.mu.Unlock()
	}
}
