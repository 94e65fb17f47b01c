package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/cart/repository"
	catalogdomain "github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrOutOfStock = errors.New("product is out of stock")

// ProductLookup dipenuhi oleh catalog ProductService.
type ProductLookup interface {
	GetProductDetails(ctx context.Context, productID int64) (*catalogdomain.Product, error)
}

type CartService interface {
	GetCart(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error)
	AddLine(ctx context.Context, ownerID int64, kind domain.Kind, req domain.AddLineRequest) (*domain.Cart, error)
	RemoveLine(ctx context.Context, ownerID int64, kind domain.Kind, code string) (*domain.Cart, error)
	ClearCart(ctx context.Context, ownerID int64, kind domain.Kind) error
	PurgeStale(ctx context.Context)
	StartSweeper(schedule string) (*cron.Cron, error)
}

type cartServiceImpl struct {
	store    repository.CartStore
	products ProductLookup
	draftTTL time.Duration
}

func NewCartService(store repository.CartStore, products ProductLookup, draftTTL time.Duration) CartService {
	return &cartServiceImpl{store: store, products: products, draftTTL: draftTTL}
}

func validKind(kind domain.Kind) error {
	if kind != domain.KindSale && kind != domain.KindShopping {
		return domain.ErrInvalidKind
	}
	return nil
}

func (s *cartServiceImpl) load(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	c, err := s.store.Load(ctx, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s cart: %w", kind, err)
	}
	if c == nil {
		c = domain.New(ownerID, kind)
	}
	return c, nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	return s.load(ctx, ownerID, kind)
}

func (s *cartServiceImpl) AddLine(ctx context.Context, ownerID int64, kind domain.Kind, req domain.AddLineRequest) (*domain.Cart, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	product, err := s.products.GetProductDetails(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("lookup product %d: %w", req.ProductID, err)
	}
	if kind == domain.KindSale && product.Stock <= 0 {
		return nil, ErrOutOfStock
	}

	price := product.Price
	if req.Price != nil {
		price = *req.Price
	}
	line := domain.Line{
		ProductID:   product.ID,
		ProductCode: product.Code,
		Quantity:    req.Quantity,
		Price:       price,
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}

	c, err := s.store.Update(ctx, ownerID, kind, func(c *domain.Cart) (bool, error) {
		return true, c.Upsert(line)
	})
	if err != nil {
		return nil, fmt.Errorf("update %s cart: %w", kind, err)
	}
	return c, nil
}

func (s *cartServiceImpl) RemoveLine(ctx context.Context, ownerID int64, kind domain.Kind, code string) (*domain.Cart, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrEmptyCode
	}

	c, err := s.store.Update(ctx, ownerID, kind, func(c *domain.Cart) (bool, error) {
		return c.Remove(code), nil
	})
	if err != nil {
		return nil, fmt.Errorf("update %s cart: %w", kind, err)
	}
	return c, nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, ownerID int64, kind domain.Kind) error {
	if err := validKind(kind); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, ownerID, kind); err != nil {
		return fmt.Errorf("delete %s cart: %w", kind, err)
	}
	return nil
}

// PurgeStale menghapus draft yang tidak disentuh lebih lama dari draftTTL.
func (s *cartServiceImpl) PurgeStale(ctx context.Context) {
	n, err := s.store.DeleteOlderThan(ctx, s.draftTTL)
	if err != nil {
		logger.Error("PurgeStale: failed to delete stale drafts", err)
		return
	}
	if n > 0 {
		logger.Info("PurgeStale: stale drafts removed", zap.Int64("count", n), zap.Duration("ttl", s.draftTTL))
	}
}

// StartSweeper menjadwalkan PurgeStale. Caller wajib memanggil Stop() saat shutdown.
func (s *cartServiceImpl) StartSweeper(schedule string) (*cron.Cron, error) {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		s.PurgeStale(ctx)
	}); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	scheduler.Start()
	logger.Info("Draft cart sweeper started", zap.String("schedule", schedule), zap.Duration("ttl", s.draftTTL))
	return scheduler, nil
}
