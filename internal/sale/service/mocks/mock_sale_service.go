package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/sale/domain"
	"github.com/stretchr/testify/mock"
)

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, userID int64, req domain.CreateSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, userID, req)
	if s := args.Get(0); s != nil {
		return s.(*domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSaleService) CheckoutDraft(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.Sale, error) {
	args := m.Called(ctx, userID, req)
	if s := args.Get(0); s != nil {
		return s.(*domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, begin, end string) ([]domain.Sale, error) {
	args := m.Called(ctx, begin, end)
	if s := args.Get(0); s != nil {
		return s.([]domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}
