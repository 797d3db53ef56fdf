package session

import (
	"context"
	"sync"

	"storefront/internal/domain/model"
)

// MemoryStore はテスト用のインメモリ実装。
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]model.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: map[string][]model.CartLine{}}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) ([]model.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.carts[sid]
	if !ok {
		return []model.CartLine{}, nil
	}

	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, sid string, lines []model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.CartLine, len(lines))
	copy(stored, lines)
	s.carts[sid] = stored
	return nil
}
