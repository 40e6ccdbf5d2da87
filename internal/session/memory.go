package session

import (
	"context"
	"sync"
)

// MemoryStore is a mutex-guarded map backend for tests and single-node
// development without Redis.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

func (s *MemoryStore) Save(_ context.Context, token string, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[token] = *rec
	return nil
}

func (s *MemoryStore) Find(_ context.Context, token string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[token]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, token)
	return nil
}

var _ Store = (*MemoryStore)(nil)
