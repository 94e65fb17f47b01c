package service

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	cartservice "github.com/ridloal/rodamientos-backoffice/internal/cart/service"
	catalogdomain "github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/events"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/timerange"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/repository"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart has no products")

// ProviderLookup dipenuhi oleh catalog ProviderService.
type ProviderLookup interface {
	GetProvider(ctx context.Context, id int64) (*catalogdomain.Provider, error)
}

type Drafts interface {
	GetCart(ctx context.Context, ownerID int64, kind cartdomain.Kind) (*cartdomain.Cart, error)
	ClearCart(ctx context.Context, ownerID int64, kind cartdomain.Kind) error
}

type ShoppingService interface {
	CreateShopping(ctx context.Context, userID int64, req domain.CreateShoppingRequest) (*domain.Shopping, error)
	CheckoutDraft(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.Shopping, error)
	ListShopping(ctx context.Context, begin, end string) ([]domain.Shopping, error)
}

type shoppingServiceImpl struct {
	repo      repository.ShoppingRepository
	catalog   cartservice.ProductCatalog
	providers ProviderLookup
	drafts    Drafts
	publisher events.Publisher
}

func NewShoppingService(repo repository.ShoppingRepository, catalog cartservice.ProductCatalog, providers ProviderLookup, drafts Drafts, publisher events.Publisher) ShoppingService {
	return &shoppingServiceImpl{repo: repo, catalog: catalog, providers: providers, drafts: drafts, publisher: publisher}
}

func (s *shoppingServiceImpl) CreateShopping(ctx context.Context, userID int64, req domain.CreateShoppingRequest) (*domain.Shopping, error) {
	lines := make([]cartdomain.LineInput, len(req.Products))
	for i, p := range req.Products {
		lines[i] = cartdomain.LineInput{ProductID: p.ProductID, Quantity: p.Quantity, Price: p.PurchasePrice}
	}
	return s.record(ctx, userID, req.ProviderID, lines)
}

func (s *shoppingServiceImpl) CheckoutDraft(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.Shopping, error) {
	cart, err := s.drafts.GetCart(ctx, userID, cartdomain.KindShopping)
	if err != nil {
		return nil, fmt.Errorf("load shopping draft: %w", err)
	}
	shopping, err := s.record(ctx, userID, req.ProviderID, cart.Inputs())
	if err != nil {
		return nil, err
	}
	if err := s.drafts.ClearCart(ctx, userID, cartdomain.KindShopping); err != nil {
		logger.Warn("CheckoutDraft: shopping recorded but draft not cleared", zap.Error(err), zap.Int64("shopping_id", shopping.ID))
	}
	return shopping, nil
}

func (s *shoppingServiceImpl) record(ctx context.Context, userID, providerID int64, lines []cartdomain.LineInput) (*domain.Shopping, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	provider, err := s.providers.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	merged, _, err := cartservice.ResolveLines(ctx, s.catalog, lines)
	if err != nil {
		return nil, err
	}

	shopping, err := s.repo.CreateShopping(ctx, domain.NewShopping{
		UserID:   userID,
		Provider: domain.ProviderRef{ID: provider.ID, Name: provider.Name},
		Lines:    merged,
		Total:    cartdomain.Total(merged),
	})
	if err != nil {
		return nil, fmt.Errorf("record shopping: %w", err)
	}
	logger.Info("Shopping recorded", zap.Int64("shopping_id", shopping.ID), zap.Int64("provider_id", provider.ID), zap.String("total", shopping.Total.String()))

	event := domain.ShoppingRecordedEvent{
		ShoppingID: shopping.ID,
		ProviderID: provider.ID,
		UserID:     userID,
		Lines:      merged,
		Total:      shopping.Total,
		RecordedAt: shopping.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.ShoppingRecorded, event); err != nil {
		logger.Error("record shopping: failed to publish event", err, zap.Int64("shopping_id", shopping.ID))
	}
	return shopping, nil
}

func (s *shoppingServiceImpl) ListShopping(ctx context.Context, begin, end string) ([]domain.Shopping, error) {
	r, err := timerange.Parse(begin, end)
	if err != nil {
		return nil, err
	}
	return s.repo.ListShopping(ctx, r.Begin, r.End)
}
