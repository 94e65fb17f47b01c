package service

import (
	"context"
	"strings"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
)

type ProviderService interface {
	ListProviders(ctx context.Context, search string) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id int64) (*domain.Provider, error)
	CreateProvider(ctx context.Context, req domain.ProviderRequest) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id int64, req domain.ProviderRequest) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error
}

type providerService struct {
	repo repository.ProviderRepository
}

func NewProviderService(repo repository.ProviderRepository) ProviderService {
	return &providerService{repo: repo}
}

func normalizeProvider(req domain.ProviderRequest) (domain.ProviderRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" {
		return req, ErrEmptyName
	}
	return req, nil
}

func (s *providerService) ListProviders(ctx context.Context, search string) ([]domain.Provider, error) {
	return s.repo.ListProviders(ctx, strings.TrimSpace(search))
}

func (s *providerService) GetProvider(ctx context.Context, id int64) (*domain.Provider, error) {
	return s.repo.GetProviderByID(ctx, id)
}

func (s *providerService) CreateProvider(ctx context.Context, req domain.ProviderRequest) (*domain.Provider, error) {
	req, err := normalizeProvider(req)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateProvider(ctx, req)
}

func (s *providerService) UpdateProvider(ctx context.Context, id int64, req domain.ProviderRequest) (*domain.Provider, error) {
	req, err := normalizeProvider(req)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateProvider(ctx, id, req)
}

func (s *providerService) DeleteProvider(ctx context.Context, id int64) error {
	return s.repo.DeleteProvider(ctx, id)
}
