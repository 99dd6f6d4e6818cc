package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/simdash/service/dao"
	"github.com/viant/simdash/service/dao/criteria"
)

// Store is a generic in-memory implementation of dao.Service keyed by
// the value returned from keySelector
type Store[T any] struct {
	mu          sync.RWMutex
	records     map[string]*T
	keySelector func(*T) string
}

// New creates a new Store.
func New[T any](keySelector func(*T) string) *Store[T] {
	return &Store[T]{
		records:     make(map[string]*T),
		keySelector: keySelector,
	}
}

// Save stores or overwrites a record.
func (s *Store[T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	if key == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = v
	return nil
}

// Load returns a record by key.
func (s *Store[T]) Load(_ context.Context, key string) (*T, error) {
	if key == "" {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dao.ErrNotFound, key)
	}
	return v, nil
}

// Delete removes a record.
func (s *Store[T]) Delete(_ context.Context, key string) error {
	if key == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return fmt.Errorf("%w: %s", dao.ErrNotFound, key)
	}
	delete(s.records, key)
	return nil
}

// List returns stored records ordered by key.
func (s *Store[T]) List(_ context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.records))
	for key := range s.records {
		if criteria.FilterByKey(key, parameters) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	out := make([]*T, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.records[key])
	}
	return out, nil
}

var _ dao.Service[string, struct{}] = (*Store[struct{}])(nil)
