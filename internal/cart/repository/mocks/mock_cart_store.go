package mocks

import (
	"context"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/stretchr/testify/mock"
)

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Load(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	args := m.Called(ctx, ownerID, kind)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartStore) Update(ctx context.Context, ownerID int64, kind domain.Kind, fn func(*domain.Cart) (bool, error)) (*domain.Cart, error) {
	args := m.Called(ctx, ownerID, kind, fn)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartStore) Delete(ctx context.Context, ownerID int64, kind domain.Kind) error {
	args := m.Called(ctx, ownerID, kind)
	return args.Error(0)
}

func (m *MockCartStore) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}
