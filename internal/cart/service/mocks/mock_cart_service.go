package mocks

import (
	"context"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/mock"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	args := m.Called(ctx, ownerID, kind)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) AddLine(ctx context.Context, ownerID int64, kind domain.Kind, req domain.AddLineRequest) (*domain.Cart, error) {
	args := m.Called(ctx, ownerID, kind, req)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) RemoveLine(ctx context.Context, ownerID int64, kind domain.Kind, code string) (*domain.Cart, error) {
	args := m.Called(ctx, ownerID, kind, code)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, ownerID int64, kind domain.Kind) error {
	args := m.Called(ctx, ownerID, kind)
	return args.Error(0)
}

func (m *MockCartService) PurgeStale(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCartService) StartSweeper(schedule string) (*cron.Cron, error) {
	args := m.Called(schedule)
	if c := args.Get(0); c != nil {
		return c.(*cron.Cron), args.Error(1)
	}
	return nil, args.Error(1)
}
