package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/cart/repository"
	storemocks "github.com/ridloal/rodamientos-backoffice/internal/cart/repository/mocks"
	catalogdomain "github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	catalogmocks "github.com/ridloal/rodamientos-backoffice/internal/catalog/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bearing(id int64, code string, stock int, price string) *catalogdomain.Product {
	return &catalogdomain.Product{ID: id, Code: code, Stock: stock, Price: decimal.RequireFromString(price)}
}

func TestCartService_AddLine(t *testing.T) {
	ctx := context.TODO()
	products := new(catalogmocks.MockProductService)
	svc := NewCartService(repository.NewMemoryCartStore(), products, time.Hour)

	products.On("GetProductDetails", ctx, int64(1)).Return(bearing(1, "6204", 10, "35.50"), nil)
	products.On("GetProductDetails", ctx, int64(2)).Return(bearing(2, "6301", 0, "12"), nil)
	products.On("GetProductDetails", ctx, int64(99)).Return(nil, catalogrepo.ErrProductNotFound)

	t.Run("Price defaults to catalog price", func(t *testing.T) {
		c, err := svc.AddLine(ctx, 7, domain.KindSale, domain.AddLineRequest{ProductID: 1, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, c.Lines, 1)
		assert.Equal(t, "6204", c.Lines[0].ProductCode)
		assert.True(t, c.Total().Equal(decimal.RequireFromString("71")))
	})

	t.Run("Adding the same product replaces the line", func(t *testing.T) {
		price := decimal.RequireFromString("30")
		c, err := svc.AddLine(ctx, 7, domain.KindSale, domain.AddLineRequest{ProductID: 1, Quantity: 3, Price: &price})
		require.NoError(t, err)
		require.Len(t, c.Lines, 1)
		assert.Equal(t, 3, c.Lines[0].Quantity)
		assert.True(t, c.Total().Equal(decimal.RequireFromString("90")))
	})

	t.Run("Draft survives a reload", func(t *testing.T) {
		c, err := svc.GetCart(ctx, 7, domain.KindSale)
		require.NoError(t, err)
		assert.Len(t, c.Lines, 1)
		assert.False(t, c.UpdatedAt.IsZero())
	})

	t.Run("Sale cart rejects products without stock", func(t *testing.T) {
		_, err := svc.AddLine(ctx, 7, domain.KindSale, domain.AddLineRequest{ProductID: 2, Quantity: 1})
		assert.ErrorIs(t, err, ErrOutOfStock)
	})

	t.Run("Shopping cart accepts products without stock", func(t *testing.T) {
		c, err := svc.AddLine(ctx, 7, domain.KindShopping, domain.AddLineRequest{ProductID: 2, Quantity: 5})
		require.NoError(t, err)
		assert.Len(t, c.Lines, 1)
	})

	t.Run("Price finer than cents is rejected before touching the draft", func(t *testing.T) {
		price := decimal.RequireFromString("0.333")
		_, err := svc.AddLine(ctx, 7, domain.KindSale, domain.AddLineRequest{ProductID: 1, Quantity: 3, Price: &price})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)

		c, err := svc.GetCart(ctx, 7, domain.KindSale)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Lines[0].Quantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		_, err := svc.AddLine(ctx, 7, domain.KindSale, domain.AddLineRequest{ProductID: 99, Quantity: 1})
		assert.ErrorIs(t, err, catalogrepo.ErrProductNotFound)
	})

	t.Run("Invalid kind", func(t *testing.T) {
		_, err := svc.AddLine(ctx, 7, domain.Kind("order"), domain.AddLineRequest{ProductID: 1, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidKind)
	})
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.TODO()
	products := new(catalogmocks.MockProductService)
	svc := NewCartService(repository.NewMemoryCartStore(), products, time.Hour)

	products.On("GetProductDetails", ctx, int64(1)).Return(bearing(1, "6204", 10, "10"), nil)
	products.On("GetProductDetails", ctx, int64(2)).Return(bearing(2, "6301", 10, "20"), nil)

	_, err := svc.AddLine(ctx, 1, domain.KindSale, domain.AddLineRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, 1, domain.KindSale, domain.AddLineRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	c, err := svc.RemoveLine(ctx, 1, domain.KindSale, "6204")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "6301", c.Lines[0].ProductCode)

	c, err = svc.RemoveLine(ctx, 1, domain.KindSale, "missing")
	require.NoError(t, err)
	assert.Len(t, c.Lines, 1)

	_, err = svc.RemoveLine(ctx, 1, domain.KindSale, "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyCode)

	require.NoError(t, svc.ClearCart(ctx, 1, domain.KindSale))
	c, err = svc.GetCart(ctx, 1, domain.KindSale)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCartService_SaveError(t *testing.T) {
	ctx := context.TODO()
	store := new(storemocks.MockCartStore)
	products := new(catalogmocks.MockProductService)
	svc := NewCartService(store, products, time.Hour)

	store.On("Update", ctx, int64(3), domain.KindShopping, mock.Anything).Return(nil, errors.New("db down")).Once()
	products.On("GetProductDetails", ctx, int64(1)).Return(bearing(1, "6204", 0, "10"), nil).Once()

	c, err := svc.AddLine(ctx, 3, domain.KindShopping, domain.AddLineRequest{ProductID: 1, Quantity: 1})
	assert.Error(t, err)
	assert.Nil(t, c)
	store.AssertExpectations(t)
}

func TestCartService_PurgeStale(t *testing.T) {
	ctx := context.TODO()
	store := new(storemocks.MockCartStore)
	svc := NewCartService(store, nil, 24*time.Hour)

	store.On("DeleteOlderThan", ctx, 24*time.Hour).Return(int64(2), nil).Once()
	svc.PurgeStale(ctx)
	store.AssertExpectations(t)
}

func TestCartService_StartSweeperRejectsBadSchedule(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartStore(), nil, time.Hour)

	scheduler, err := svc.StartSweeper("every now and then")
	assert.Error(t, err)
	assert.Nil(t, scheduler)

	scheduler, err = svc.StartSweeper("@every 1h")
	require.NoError(t, err)
	scheduler.Stop()
}
