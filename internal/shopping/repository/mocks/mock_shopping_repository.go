package mocks

import (
	"context"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/shopping/domain"
	"github.com/stretchr/testify/mock"
)

type MockShoppingRepository struct {
	mock.Mock
}

func (m *MockShoppingRepository) CreateShopping(ctx context.Context, shopping domain.NewShopping) (*domain.Shopping, error) {
	args := m.Called(ctx, shopping)
	if s := args.Get(0); s != nil {
		return s.(*domain.Shopping), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShoppingRepository) ListShopping(ctx context.Context, begin, end time.Time) ([]domain.Shopping, error) {
	args := m.Called(ctx, begin, end)
	if s := args.Get(0); s != nil {
		return s.([]domain.Shopping), args.Error(1)
	}
	return nil, args.Error(1)
}
