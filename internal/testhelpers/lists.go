package testhelpers

import (
	"context"
	"sync"
)

// MemListStore is an in-memory implementation of the menu service's
// list store, mirroring Redis list semantics (push prepends, remove
// drops a single occurrence).
type MemListStore struct {
	mu    sync.Mutex
	lists map[string][]string
}

// NewMemListStore creates an empty in-memory list store
func NewMemListStore() *MemListStore {
	return &MemListStore{lists: make(map[string][]string)}
}

// Range returns every value stored under key, head first
func (s *MemListStore) Range(ctx context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]string, len(s.lists[key]))
	copy(values, s.lists[key])
	return values, nil
}

// Push prepends value to the list under key
func (s *MemListStore) Push(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append([]string{value}, s.lists[key]...)
	return nil
}

// Remove deletes a single occurrence of value from the list under key
func (s *MemListStore) Remove(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.lists[key]
	for i, v := range values {
		if v == value {
			s.lists[key] = append(values[:i:i], values[i+1:]...)
			return nil
		}
	}
	return nil
}

// Delete drops the entire list under key
func (s *MemListStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, key)
	return nil
}

// MemSessionLocker is an in-memory per-session lock for tests
type MemSessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemSessionLocker creates an empty in-memory session locker
func NewMemSessionLocker() *MemSessionLocker {
	return &MemSessionLocker{locks: make(map[string]*sync.Mutex)}
}

// Acquire locks the session and returns its release function
func (l *MemSessionLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[sessionID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock, nil
}
