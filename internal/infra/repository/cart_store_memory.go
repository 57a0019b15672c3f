package repository

import (
	"context"
	"sync"
)

// インメモリのCartStore。DB無しの開発とテストで使う。
type CartStoreMemory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewCartStoreMemory() *CartStoreMemory {
	return &CartStoreMemory{data: map[string]string{}}
}

func (s *CartStoreMemory) Get(ctx context.Context, sessionKey string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[sessionKey]
	return raw, ok, nil
}

func (s *CartStoreMemory) Put(ctx context.Context, sessionKey string, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionKey] = raw
	return nil
}
