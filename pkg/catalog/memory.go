package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore implements Store using an in-memory map. It is used by the
// "memory" backend and throughout the tests; entries do not survive process
// restarts.
type MemoryStore struct {
	entries map[string]*Entry
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory catalog store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
	}
}

// Put inserts or replaces an entry. If an entry with the same name exists,
// its ID and creation time are preserved.
func (s *MemoryStore) Put(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	if prev, ok := s.entries[entry.Name]; ok {
		stored.ID = prev.ID
		stored.CreatedAt = prev.CreatedAt
	}
	s.entries[entry.Name] = &stored
	return nil
}

// Get returns the entry with the given name, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, name string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	if !ok {
		return nil, ErrNotFound
	}
	entryCopy := *entry
	return &entryCopy, nil
}

// List returns all entries ordered by name.
func (s *MemoryStore) List(ctx context.Context) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entryCopy := *entry
		results = append(results, &entryCopy)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

// Delete removes the entry with the given name, or returns ErrNotFound.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; !ok {
		return ErrNotFound
	}
	delete(s.entries, name)
	return nil
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
