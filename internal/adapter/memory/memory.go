// Package memory implements the in-memory item repository. This is the
// authoritative store for a process run; nothing is persisted.
package memory

import (
	"context"
	"sync"

	"consumption/internal/domain"
)

// Store implements an in-memory, insertion-ordered item collection.
type Store struct {
	mu    sync.Mutex
	items []domain.Consumable
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Ensure interfaces are met.
var _ domain.ItemRepository = (*Store)(nil)

// Append adds an item to the end of the sequence.
func (s *Store) Append(ctx context.Context, item domain.Consumable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return nil
}

// Snapshot returns a copy of the current sequence in insertion order.
func (s *Store) Snapshot(ctx context.Context) ([]domain.Consumable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Consumable, len(s.items))
	copy(result, s.items)
	return result, nil
}

// RemoveAt removes the item at index, preserving the relative order of the
// remaining items. Returns false for an out-of-range index.
func (s *Store) RemoveAt(ctx context.Context, index int) (domain.Consumable, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return domain.Consumable{}, false, nil
	}

	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	return removed, true, nil
}

// Len returns the number of tracked items.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}

// SumCalories returns the total calories over all tracked items.
func (s *Store) SumCalories(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		total += item.Calories
	}
	return total, nil
}
