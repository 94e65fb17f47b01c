package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/stretchr/testify/mock"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByNIT(ctx context.Context, nit string) (*domain.Client, error) {
	args := m.Called(ctx, nit)
	if c := args.Get(0); c != nil {
		return c.(*domain.Client), args.Error(1)
	}
	return nil, args.Error(1)
}
