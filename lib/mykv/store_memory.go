package mykv

import (
	"context"
	"sync"
)

type memoryStore struct {
	sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{
		entries: map[string][]byte{},
	}
}

func (s *memoryStore) Put(c context.Context, key string, value []byte) error {
	s.Lock()
	defer s.Unlock()

	s.entries[key] = append([]byte{}, value...)
	return nil
}

func (s *memoryStore) Get(c context.Context, key string) ([]byte, bool, error) {
	s.RLock()
	defer s.RUnlock()

	value, exists := s.entries[key]
	if !exists {
		return nil, false, nil
	}
	return append([]byte{}, value...), true, nil
}

func (s *memoryStore) Delete(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	delete(s.entries, key)
	return nil
}
