package repository

import (
	"sync"
)

// withWrite runs fn under the write lock. Every mutation of a collection goes
// through it so that id assignment and the append happen atomically.
func withWrite[T any](mu *sync.RWMutex, fn func() (T, error)) (T, error) {
	mu.Lock()
	defer mu.Unlock()

	return fn()
}

// withRead runs fn under the read lock.
func withRead[T any](mu *sync.RWMutex, fn func() T) T {
	mu.RLock()
	defer mu.RUnlock()

	return fn()
}

// nextID returns max(ids)+1, or 1 for an empty collection.
func nextID[T any](records []T, id func(T) int64) int64 {
	var maxID int64
	for _, r := range records {
		maxID = max(maxID, id(r))
	}

	return maxID + 1
}
