package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
)

type memoryKey struct {
	ownerID int64
	kind    domain.Kind
}

// MemoryCartStore aman dipakai concurrent; draft hilang saat proses berhenti.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[memoryKey]*domain.Cart
	now   func() time.Time
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[memoryKey]*domain.Cart),
		now:   time.Now,
	}
}

func cloneCart(c *domain.Cart) *domain.Cart {
	out := *c
	out.Lines = append([]domain.Line{}, c.Lines...)
	return &out
}

func (s *MemoryCartStore) Load(_ context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[memoryKey{ownerID, kind}]
	if !ok {
		return nil, nil
	}
	return cloneCart(c), nil
}

func (s *MemoryCartStore) Update(_ context.Context, ownerID int64, kind domain.Kind, fn func(*domain.Cart) (bool, error)) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey{ownerID, kind}
	c := domain.New(ownerID, kind)
	if stored, ok := s.carts[key]; ok {
		c = cloneCart(stored)
	}
	changed, err := fn(c)
	if err != nil {
		return nil, err
	}
	if changed {
		c.UpdatedAt = s.now()
		s.carts[key] = cloneCart(c)
	}
	return c, nil
}

func (s *MemoryCartStore) Delete(_ context.Context, ownerID int64, kind domain.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, memoryKey{ownerID, kind})
	return nil
}

func (s *MemoryCartStore) DeleteOlderThan(_ context.Context, age time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	threshold := s.now().Add(-age)
	var n int64
	for k, c := range s.carts {
		if c.UpdatedAt.Before(threshold) {
			delete(s.carts, k)
			n++
		}
	}
	return n, nil
}
