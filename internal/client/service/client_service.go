package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/client/repository"
)

var ErrEmptyNIT = errors.New("nit is required")

type ClientService interface {
	GetClientByNIT(ctx context.Context, nit string) (*domain.Client, error)
}

type clientServiceImpl struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientServiceImpl{repo: repo}
}

func (s *clientServiceImpl) GetClientByNIT(ctx context.Context, nit string) (*domain.Client, error) {
	nit = strings.TrimSpace(nit)
	if nit == "" {
		return nil, ErrEmptyNIT
	}
	return s.repo.GetClientByNIT(ctx, nit)
}
