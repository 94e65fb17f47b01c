package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/stretchr/testify/mock"
)

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) ListBrands(ctx context.Context, search string) ([]domain.Brand, error) {
	args := m.Called(ctx, search)
	if b := args.Get(0); b != nil {
		return b.([]domain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandService) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandService) CreateBrand(ctx context.Context, req domain.NamedRequest) (*domain.Brand, error) {
	args := m.Called(ctx, req)
	if b := args.Get(0); b != nil {
		return b.(*domain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandService) UpdateBrand(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Brand, error) {
	args := m.Called(ctx, id, req)
	if b := args.Get(0); b != nil {
		return b.(*domain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandService) DeleteBrand(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
