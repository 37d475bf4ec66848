package repository

import (
	"context"
	"sync"

	repo "storefront/internal/repository"
)

// プロセス内だけのスロット
type MemorySlotRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repo.SlotRepository = (*MemorySlotRepository)(nil)

func NewMemorySlotRepository() *MemorySlotRepository {
	return &MemorySlotRepository{values: map[string]string{}}
}

func (r *MemorySlotRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", repo.ErrSlotNotFound
	}
	return v, nil
}

func (r *MemorySlotRepository) Set(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *MemorySlotRepository) Remove(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}
