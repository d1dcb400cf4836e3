// Package memory provides a process-local repository.KeyValueStore.
package memory

import (
	"context"
	"sync"
)

// Store keeps values in a map. It does not survive a restart.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Store) Close(context.Context) error {
	return nil
}
