package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"go.uber.org/zap"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, search string) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req domain.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type postgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

const productSelect = `SELECT p.id, p.code, p.stock, p.price, p.measures, b.id, b.name, pl.id, pl.name, p.created_at, p.updated_at
              FROM products p
              JOIN brands b ON b.id = p.brand_id
              JOIN places pl ON pl.id = p.place_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Code, &p.Stock, &p.Price, &p.Measures,
		&p.Brand.ID, &p.Brand.Name, &p.Place.ID, &p.Place.Name, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *postgresProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	query := productSelect + `
              WHERE $1 = '' OR p.code ILIKE $1 OR p.measures ILIKE $1 OR b.name ILIKE $1
              ORDER BY p.code ASC`
	return r.queryProducts(ctx, query, containsPattern(search))
}

func (r *postgresProductRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	return r.queryProducts(ctx, productSelect+` WHERE p.id = ANY($1)`, pq.Array(ids))
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err, zap.Int64("product_id", id))
		return nil, err
	}
	return &p, nil
}

func translateProductWriteErr(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return ErrProductConflict
	case database.IsForeignKeyViolation(err):
		return ErrInvalidReference
	}
	return err
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	query := `INSERT INTO products (code, measures, price, stock, brand_id, place_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW()) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, req.Code, req.Measures, req.Price, stock, req.BrandID, req.PlaceID).Scan(&id)
	if err != nil {
		if translated := translateProductWriteErr(err); translated != err {
			return nil, translated
		}
		logger.Error("CreateProduct: insert failed", err)
		return nil, err
	}
	return r.GetProductByID(ctx, id)
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, id int64, req domain.ProductRequest) (*domain.Product, error) {
	// stock hanya berubah lewat penjualan/pembelian kecuali dikirim eksplisit
	query := `UPDATE products
              SET code = $1, measures = $2, price = $3, brand_id = $4, place_id = $5,
                  stock = COALESCE($6, stock), updated_at = NOW()
              WHERE id = $7`

	var stock sql.NullInt64
	if req.Stock != nil {
		stock = sql.NullInt64{Int64: int64(*req.Stock), Valid: true}
	}
	res, err := r.db.ExecContext(ctx, query, req.Code, req.Measures, req.Price, req.BrandID, req.PlaceID, stock, id)
	if err != nil {
		if translated := translateProductWriteErr(err); translated != err {
			return nil, translated
		}
		logger.Error("UpdateProduct: exec failed", err, zap.Int64("product_id", id))
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrProductNotFound
	}
	return r.GetProductByID(ctx, id)
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrProductInUse
		}
		logger.Error("DeleteProduct: exec failed", err, zap.Int64("product_id", id))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
