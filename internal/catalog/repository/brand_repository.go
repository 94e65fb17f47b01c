package repository

import (
	"context"
	"database/sql"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
)

type BrandRepository interface {
	ListBrands(ctx context.Context, search string) ([]domain.Brand, error)
	GetBrandByID(ctx context.Context, id int64) (*domain.Brand, error)
	CreateBrand(ctx context.Context, req domain.NamedRequest) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type postgresBrandRepository struct {
	t namedTable
}

func NewPostgresBrandRepository(db *sql.DB) BrandRepository {
	return &postgresBrandRepository{t: namedTable{
		db:          db,
		table:       "brands",
		fkColumn:    "brand_id",
		errNotFound: ErrBrandNotFound,
		errConflict: ErrBrandConflict,
		errInUse:    ErrBrandInUse,
	}}
}

func toBrand(n *namedRow, products []domain.ProductShort) *domain.Brand {
	if products == nil {
		products = []domain.ProductShort{}
	}
	return &domain.Brand{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Products:    products,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (r *postgresBrandRepository) ListBrands(ctx context.Context, search string) ([]domain.Brand, error) {
	rows, err := r.t.list(ctx, search)
	if err != nil {
		return nil, err
	}
	brands := make([]domain.Brand, len(rows))
	for i := range rows {
		brands[i] = *toBrand(&rows[i], nil)
	}
	return brands, nil
}

func (r *postgresBrandRepository) GetBrandByID(ctx context.Context, id int64) (*domain.Brand, error) {
	n, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := r.t.products(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBrand(n, products), nil
}

func (r *postgresBrandRepository) CreateBrand(ctx context.Context, req domain.NamedRequest) (*domain.Brand, error) {
	n, err := r.t.create(ctx, req)
	if err != nil {
		return nil, err
	}
	return toBrand(n, nil), nil
}

func (r *postgresBrandRepository) UpdateBrand(ctx context.Context, id int64, req domain.NamedRequest) (*domain.Brand, error) {
	n, err := r.t.update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return toBrand(n, nil), nil
}

func (r *postgresBrandRepository) DeleteBrand(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}
