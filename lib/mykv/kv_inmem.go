package mykv

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	sync.Mutex
	values map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		values: map[string]string{},
	}
}

func (s *InMemoryStore) Get(c context.Context, key string) (string, bool, error) {
	s.Lock()
	defer s.Unlock()

	value, found := s.values[key]
	return value, found, nil
}

func (s *InMemoryStore) Set(c context.Context, key string, value string) error {
	s.Lock()
	defer s.Unlock()

	s.values[key] = value
	return nil
}
