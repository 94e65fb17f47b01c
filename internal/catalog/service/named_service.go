package service

import (
	"context"
	"strings"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
)

type BrandService interface {
	ListBrands(ctx context.Context, search string) ([]domain.Brand, error)
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	CreateBrand(ctx context.Context, req domain.NamedRequest) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type PlaceService interface {
	ListPlaces(ctx context.Context, search string) ([]domain.Place, error)
	GetPlace(ctx context.Context, id int64) (*domain.Place, error)
	CreatePlace(ctx context.Context, req domain.NamedRequest) (*domain.Place, error)
	UpdatePlace(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Place, error)
	DeletePlace(ctx context.Context, id int64) error
}

func normalizeNamed(req domain.NamedRequest) (domain.NamedRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, ErrEmptyName
	}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if d == "" {
			req.Description = nil
		} else {
			req.Description = &d
		}
	}
	return req, nil
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) ListBrands(ctx context.Context, search string) ([]domain.Brand, error) {
	return s.repo.ListBrands(ctx, strings.TrimSpace(search))
}

func (s *brandService) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	return s.repo.GetBrandByID(ctx, id)
}

func (s *brandService) CreateBrand(ctx context.Context, req domain.NamedRequest) (*domain.Brand, error) {
	req, err := normalizeNamed(req)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateBrand(ctx, req)
}

func (s *brandService) UpdateBrand(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Brand, error) {
	req, err := normalizeNamed(req)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateBrand(ctx, id, req)
}

func (s *brandService) DeleteBrand(ctx context.Context, id int64) error {
	return s.repo.DeleteBrand(ctx, id)
}

type placeService struct {
	repo repository.PlaceRepository
}

func NewPlaceService(repo repository.PlaceRepository) PlaceService {
	return &placeService{repo: repo}
}

func (s *placeService) ListPlaces(ctx context.Context, search string) ([]domain.Place, error) {
	return s.repo.ListPlaces(ctx, strings.TrimSpace(search))
}

func (s *placeService) GetPlace(ctx context.Context, id int64) (*domain.Place, error) {
	return s.repo.GetPlaceByID(ctx, id)
}

func (s *placeService) CreatePlace(ctx context.Context, req domain.NamedRequest) (*domain.Place, error) {
	req, err := normalizeNamed(req)
	if err != nil {
		return nil, err
	}
	return s.repo.CreatePlace(ctx, req)
}

func (s *placeService) UpdatePlace(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Place, error) {
	req, err := normalizeNamed(req)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdatePlace(ctx, id, req)
}

func (s *placeService) DeletePlace(ctx context.Context, id int64) error {
	return s.repo.DeletePlace(ctx, id)
}
