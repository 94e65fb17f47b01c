package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/stretchr/testify/mock"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) ListProviders(ctx context.Context, search string) ([]domain.Provider, error) {
	args := m.Called(ctx, search)
	if p := args.Get(0); p != nil {
		return p.([]domain.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepository) GetProviderByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepository) CreateProvider(ctx context.Context, req domain.ProviderRequest) (*domain.Provider, error) {
	args := m.Called(ctx, req)
	if p := args.Get(0); p != nil {
		return p.(*domain.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepository) UpdateProvider(ctx context.Context, id int64, req domain.ProviderRequest) (*domain.Provider, error) {
	args := m.Called(ctx, id, req)
	if p := args.Get(0); p != nil {
		return p.(*domain.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepository) DeleteProvider(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
