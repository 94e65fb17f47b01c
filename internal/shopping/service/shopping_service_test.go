package service

import (
	"context"
	"testing"

	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	cartmocks "github.com/ridloal/rodamientos-backoffice/internal/cart/service/mocks"
	catalogdomain "github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	catalogmocks "github.com/ridloal/rodamientos-backoffice/internal/catalog/service/mocks"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/events"
	eventmocks "github.com/ridloal/rodamientos-backoffice/internal/platform/events/mocks"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo      *mocks.MockShoppingRepository
	products  *catalogmocks.MockProductService
	providers *catalogmocks.MockProviderService
	drafts    *cartmocks.MockCartService
	publisher *eventmocks.MockPublisher
	svc       ShoppingService
}

func newFixture() *fixture {
	f := &fixture{
		repo:      new(mocks.MockShoppingRepository),
		products:  new(catalogmocks.MockProductService),
		providers: new(catalogmocks.MockProviderService),
		drafts:    new(cartmocks.MockCartService),
		publisher: new(eventmocks.MockPublisher),
	}
	f.svc = NewShoppingService(f.repo, f.products, f.providers, f.drafts, f.publisher)
	return f
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var catalog = map[int64]catalogdomain.Product{
	1: {ID: 1, Code: "6204", Stock: 0},
	2: {ID: 2, Code: "6301", Stock: 4},
}

func TestShoppingService_CreateShopping(t *testing.T) {
	ctx := context.TODO()

	t.Run("Records a purchase for out-of-stock products", func(t *testing.T) {
		f := newFixture()
		f.providers.On("GetProvider", ctx, int64(3)).Return(&catalogdomain.Provider{ID: 3, Name: "Rodamientos Sur"}, nil).Once()
		f.products.On("GetProductsByIDs", ctx, []int64{1, 2}).Return(catalog, nil).Once()
		f.repo.On("CreateShopping", ctx, mock.MatchedBy(func(s domain.NewShopping) bool {
			return s.Provider.Name == "Rodamientos Sur" && len(s.Lines) == 2 && s.Total.Equal(decimal.NewFromInt(260))
		})).Return(&domain.Shopping{ID: 11, Total: decimal.NewFromInt(260)}, nil).Once()
		f.publisher.On("Publish", ctx, events.ShoppingRecorded, mock.AnythingOfType("domain.ShoppingRecordedEvent")).Return(nil).Once()

		shopping, err := f.svc.CreateShopping(ctx, 9, domain.CreateShoppingRequest{
			ProviderID: 3,
			Products: []domain.ShoppingLine{
				{ProductID: 1, Quantity: 10, PurchasePrice: price("20")},
				{ProductID: 2, Quantity: 4, PurchasePrice: price("15")},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), shopping.ID)
		f.repo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		f := newFixture()
		f.providers.On("GetProvider", ctx, int64(99)).Return(nil, catalogrepo.ErrProviderNotFound).Once()

		_, err := f.svc.CreateShopping(ctx, 9, domain.CreateShoppingRequest{
			ProviderID: 99,
			Products:   []domain.ShoppingLine{{ProductID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, catalogrepo.ErrProviderNotFound)
		f.repo.AssertNotCalled(t, "CreateShopping", mock.Anything, mock.Anything)
	})

	t.Run("Empty cart", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.CreateShopping(ctx, 9, domain.CreateShoppingRequest{ProviderID: 3})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}

func TestShoppingService_CheckoutDraft(t *testing.T) {
	ctx := context.TODO()
	f := newFixture()

	draft := cartdomain.New(9, cartdomain.KindShopping)
	draft.Lines = []cartdomain.Line{{ProductID: 2, ProductCode: "6301", Quantity: 6, Price: decimal.NewFromInt(15)}}

	f.drafts.On("GetCart", ctx, int64(9), cartdomain.KindShopping).Return(draft, nil).Once()
	f.providers.On("GetProvider", ctx, int64(3)).Return(&catalogdomain.Provider{ID: 3}, nil).Once()
	f.products.On("GetProductsByIDs", ctx, []int64{2}).Return(catalog, nil).Once()
	f.repo.On("CreateShopping", ctx, mock.Anything).Return(&domain.Shopping{ID: 12}, nil).Once()
	f.publisher.On("Publish", ctx, events.ShoppingRecorded, mock.Anything).Return(nil).Once()
	f.drafts.On("ClearCart", ctx, int64(9), cartdomain.KindShopping).Return(nil).Once()

	shopping, err := f.svc.CheckoutDraft(ctx, 9, domain.CheckoutRequest{ProviderID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(12), shopping.ID)
	f.drafts.AssertExpectations(t)
}
