package service

import (
	"context"
	"errors"
	"strings"

	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
)

var (
	ErrInvalidPrice = errors.New("price must not be negative and have at most 2 decimal places")
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyCode    = errors.New("code is required")
)

type ProductService interface {
	ListProducts(ctx context.Context, search string) ([]domain.Product, error)
	GetProductDetails(ctx context.Context, productID int64) (*domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req domain.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func normalizeProduct(req domain.ProductRequest) (domain.ProductRequest, error) {
	req.Code = strings.TrimSpace(req.Code)
	req.Measures = strings.TrimSpace(req.Measures)
	if req.Code == "" {
		return req, ErrEmptyCode
	}
	if !cartdomain.ValidPrice(req.Price) {
		return req, ErrInvalidPrice
	}
	return req, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, strings.TrimSpace(search))
}

func (s *productServiceImpl) GetProductDetails(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}

// GetProductsByIDs mengembalikan produk yang ditemukan, di-index per ID. ID yang
// tidak ada tidak muncul di map; caller yang memutuskan apakah itu error.
func (s *productServiceImpl) GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	products, err := s.repo.GetProductsByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	req, err := normalizeProduct(req)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateProduct(ctx, req)
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID int64, req domain.ProductRequest) (*domain.Product, error) {
	req, err := normalizeProduct(req)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateProduct(ctx, productID, req)
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, productID int64) error {
	return s.repo.DeleteProduct(ctx, productID)
}
