package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	cartservice "github.com/ridloal/rodamientos-backoffice/internal/cart/service"
	clientdomain "github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/events"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/timerange"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/repository"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart = errors.New("cart has no products")
	ErrEmptyNIT  = errors.New("nit is required")
)

// Drafts dipenuhi oleh cart service.
type Drafts interface {
	GetCart(ctx context.Context, ownerID int64, kind cartdomain.Kind) (*cartdomain.Cart, error)
	ClearCart(ctx context.Context, ownerID int64, kind cartdomain.Kind) error
}

type SaleService interface {
	CreateSale(ctx context.Context, userID int64, req domain.CreateSaleRequest) (*domain.Sale, error)
	CheckoutDraft(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.Sale, error)
	ListSales(ctx context.Context, begin, end string) ([]domain.Sale, error)
}

type saleServiceImpl struct {
	repo      repository.SaleRepository
	catalog   cartservice.ProductCatalog
	drafts    Drafts
	publisher events.Publisher
}

func NewSaleService(repo repository.SaleRepository, catalog cartservice.ProductCatalog, drafts Drafts, publisher events.Publisher) SaleService {
	return &saleServiceImpl{repo: repo, catalog: catalog, drafts: drafts, publisher: publisher}
}

func normalizeClient(req clientdomain.ClientRequest) (clientdomain.ClientRequest, error) {
	req.NIT = strings.TrimSpace(req.NIT)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.NIT == "" {
		return req, ErrEmptyNIT
	}
	return req, nil
}

func (s *saleServiceImpl) CreateSale(ctx context.Context, userID int64, req domain.CreateSaleRequest) (*domain.Sale, error) {
	lines := make([]cartdomain.LineInput, len(req.Products))
	for i, p := range req.Products {
		lines[i] = cartdomain.LineInput{ProductID: p.ProductID, Quantity: p.Quantity, Price: p.SalePrice}
	}
	return s.record(ctx, userID, req.ClientRequest, lines)
}

// CheckoutDraft mencatat draft penjualan operator lalu mengosongkannya.
func (s *saleServiceImpl) CheckoutDraft(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.Sale, error) {
	cart, err := s.drafts.GetCart(ctx, userID, cartdomain.KindSale)
	if err != nil {
		return nil, fmt.Errorf("load sale draft: %w", err)
	}
	sale, err := s.record(ctx, userID, req.ClientRequest, cart.Inputs())
	if err != nil {
		return nil, err
	}
	if err := s.drafts.ClearCart(ctx, userID, cartdomain.KindSale); err != nil {
		logger.Warn("CheckoutDraft: sale recorded but draft not cleared", zap.Error(err), zap.Int64("sale_id", sale.ID))
	}
	return sale, nil
}

func (s *saleServiceImpl) record(ctx context.Context, userID int64, client clientdomain.ClientRequest, lines []cartdomain.LineInput) (*domain.Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	client, err := normalizeClient(client)
	if err != nil {
		return nil, err
	}
	merged, _, err := cartservice.ResolveLines(ctx, s.catalog, lines)
	if err != nil {
		return nil, err
	}

	sale, err := s.repo.CreateSale(ctx, domain.NewSale{
		UserID: userID,
		Client: client,
		Lines:  merged,
		Total:  cartdomain.Total(merged),
	})
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	logger.Info("Sale recorded", zap.Int64("sale_id", sale.ID), zap.String("nit", client.NIT), zap.String("total", sale.Total.String()))

	event := domain.SaleRecordedEvent{
		SaleID:     sale.ID,
		ClientNIT:  sale.Client.NIT,
		UserID:     userID,
		Lines:      merged,
		Total:      sale.Total,
		RecordedAt: sale.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.SaleRecorded, event); err != nil {
		logger.Error("record sale: failed to publish event", err, zap.Int64("sale_id", sale.ID))
	}
	return sale, nil
}

func (s *saleServiceImpl) ListSales(ctx context.Context, begin, end string) ([]domain.Sale, error) {
	r, err := timerange.Parse(begin, end)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSales(ctx, r.Begin, r.End)
}
