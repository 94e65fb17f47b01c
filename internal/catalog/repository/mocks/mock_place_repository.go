package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/stretchr/testify/mock"
)

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) ListPlaces(ctx context.Context, search string) ([]domain.Place, error) {
	args := m.Called(ctx, search)
	if b := args.Get(0); b != nil {
		return b.([]domain.Place), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) GetPlaceByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Place), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) CreatePlace(ctx context.Context, req domain.NamedRequest) (*domain.Place, error) {
	args := m.Called(ctx, req)
	if b := args.Get(0); b != nil {
		return b.(*domain.Place), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) UpdatePlace(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Place, error) {
	args := m.Called(ctx, id, req)
	if b := args.Get(0); b != nil {
		return b.(*domain.Place), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) DeletePlace(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
