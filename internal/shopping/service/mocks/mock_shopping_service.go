package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/shopping/domain"
	"github.com/stretchr/testify/mock"
)

type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) CreateShopping(ctx context.Context, userID int64, req domain.CreateShoppingRequest) (*domain.Shopping, error) {
	args := m.Called(ctx, userID, req)
	if s := args.Get(0); s != nil {
		return s.(*domain.Shopping), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShoppingService) CheckoutDraft(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.Shopping, error) {
	args := m.Called(ctx, userID, req)
	if s := args.Get(0); s != nil {
		return s.(*domain.Shopping), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShoppingService) ListShopping(ctx context.Context, begin, end string) ([]domain.Shopping, error) {
	args := m.Called(ctx, begin, end)
	if s := args.Get(0); s != nil {
		return s.([]domain.Shopping), args.Error(1)
	}
	return nil, args.Error(1)
}
