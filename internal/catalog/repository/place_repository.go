package repository

import (
	"context"
	"database/sql"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
)

type PlaceRepository interface {
	ListPlaces(ctx context.Context, search string) ([]domain.Place, error)
	GetPlaceByID(ctx context.Context, id int64) (*domain.Place, error)
	CreatePlace(ctx context.Context, req domain.NamedRequest) (*domain.Place, error)
	UpdatePlace(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Place, error)
	DeletePlace(ctx context.Context, id int64) error
}

type postgresPlaceRepository struct {
	t namedTable
}

func NewPostgresPlaceRepository(db *sql.DB) PlaceRepository {
	return &postgresPlaceRepository{t: namedTable{
		db:          db,
		table:       "places",
		fkColumn:    "place_id",
		errNotFound: ErrPlaceNotFound,
		errConflict: ErrPlaceConflict,
		errInUse:    ErrPlaceInUse,
	}}
}

func toPlace(n *namedRow, products []domain.ProductShort) *domain.Place {
	if products == nil {
		products = []domain.ProductShort{}
	}
	return &domain.Place{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Products:    products,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (r *postgresPlaceRepository) ListPlaces(ctx context.Context, search string) ([]domain.Place, error) {
	rows, err := r.t.list(ctx, search)
	if err != nil {
		return nil, err
	}
	places := make([]domain.Place, len(rows))
	for i := range rows {
		places[i] = *toPlace(&rows[i], nil)
	}
	return places, nil
}

func (r *postgresPlaceRepository) GetPlaceByID(ctx context.Context, id int64) (*domain.Place, error) {
	n, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := r.t.products(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPlace(n, products), nil
}

func (r *postgresPlaceRepository) CreatePlace(ctx context.Context, req domain.NamedRequest) (*domain.Place, error) {
	n, err := r.t.create(ctx, req)
	if err != nil {
		return nil, err
	}
	return toPlace(n, nil), nil
}

func (r *postgresPlaceRepository) UpdatePlace(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Place, error) {
	n, err := r.t.update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return toPlace(n, nil), nil
}

func (r *postgresPlaceRepository) DeletePlace(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
