package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"go.uber.org/zap"
)

type ProviderRepository interface {
	ListProviders(ctx context.Context, search string) ([]domain.Provider, error)
	GetProviderByID(ctx context.Context, id int64) (*domain.Provider, error)
	CreateProvider(ctx context.Context, req domain.ProviderRequest) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id int64, req domain.ProviderRequest) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error
}

type postgresProviderRepository struct {
	db *sql.DB
}

func NewPostgresProviderRepository(db *sql.DB) ProviderRepository {
	return &postgresProviderRepository{db: db}
}

func (r *postgresProviderRepository) ListProviders(ctx context.Context, search string) ([]domain.Provider, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM providers
              WHERE $1 = '' OR name ILIKE $1 OR address ILIKE $1
              ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, containsPattern(search))
	if err != nil {
		logger.Error("ListProviders: query failed", err)
		return nil, err
	}
	defer rows.Close()

	providers := []domain.Provider{}
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			logger.Error("ListProviders: scan failed", err)
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *postgresProviderRepository) GetProviderByID(ctx context.Context, id int64) (*domain.Provider, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM providers WHERE id = $1`
	var p domain.Provider
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProviderNotFound
		}
		logger.Error("GetProviderByID: query failed", err, zap.Int64("provider_id", id))
		return nil, err
	}
	return &p, nil
}

func (r *postgresProviderRepository) CreateProvider(ctx context.Context, req domain.ProviderRequest) (*domain.Provider, error) {
	query := `INSERT INTO providers (name, address, created_at, updated_at)
              VALUES ($1, $2, NOW(), NOW()) RETURNING id, created_at, updated_at`
	p := domain.Provider{Name: req.Name, Address: req.Address}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Address).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.Error("CreateProvider: insert failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresProviderRepository) UpdateProvider(ctx context.Context, id int64, req domain.ProviderRequest) (*domain.Provider, error) {
	query := `UPDATE providers SET name = $1, address = $2, updated_at = NOW()
              WHERE id = $3 RETURNING created_at, updated_at`
	p := domain.Provider{ID: id, Name: req.Name, Address: req.Address}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Address, id).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProviderNotFound
		}
		logger.Error("UpdateProvider: exec failed", err, zap.Int64("provider_id", id))
		return nil, err
	}
	return &p, nil
}

func (r *postgresProviderRepository) DeleteProvider(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrProviderInUse
		}
		logger.Error("DeleteProvider: exec failed", err, zap.Int64("provider_id", id))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProviderNotFound
	}
	return nil
}
