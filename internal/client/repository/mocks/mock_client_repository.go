package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetClientByNIT(ctx context.Context, nit string) (*domain.Client, error) {
	args := m.Called(ctx, nit)
	if c := args.Get(0); c != nil {
		return c.(*domain.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) UpsertClient(ctx context.Context, q database.DBTX, req domain.ClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, q, req)
	if c := args.Get(0); c != nil {
		return c.(*domain.Client), args.Error(1)
	}
	return nil, args.Error(1)
}
