package mocks

import (
	"context"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/sale/domain"
	"github.com/stretchr/testify/mock"
)

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale domain.NewSale) (*domain.Sale, error) {
	args := m.Called(ctx, sale)
	if s := args.Get(0); s != nil {
		return s.(*domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, begin, end time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, begin, end)
	if s := args.Get(0); s != nil {
		return s.([]domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}
