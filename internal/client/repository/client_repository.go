package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientConflict = errors.New("client with this nit was created concurrently")
)

type ClientRepository interface {
	GetClientByNIT(ctx context.Context, nit string) (*domain.Client, error)
	// UpsertClient dijalankan di dalam transaksi penjualan.
	UpsertClient(ctx context.Context, q database.DBTX, req domain.ClientRequest) (*domain.Client, error)
}

type postgresClientRepository struct {
	db *sql.DB
}

func NewPostgresClientRepository(db *sql.DB) ClientRepository {
	return &postgresClientRepository{db: db}
}

const clientSelect = `
	SELECT c.id, c.nit, c.created_at, c.updated_at, p.id, p.first_name, p.last_name, p.phone
	FROM clients c
	JOIN people p ON p.id = c.person_id`

func scanClient(row interface{ Scan(...any) error }) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.NIT, &c.CreatedAt, &c.UpdatedAt,
		&c.Person.ID, &c.Person.FirstName, &c.Person.LastName, &c.Person.Phone)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresClientRepository) GetClientByNIT(ctx context.Context, nit string) (*domain.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, clientSelect+` WHERE c.nit = $1`, nit))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		logger.Error("GetClientByNIT: failed to query client", err)
		return nil, fmt.Errorf("query client: %w", err)
	}
	return c, nil
}

// UpsertClient membuat client baru atau memperbarui nama dan telepon client yang sudah ada.
// Field kosong tidak menimpa data lama.
func (r *postgresClientRepository) UpsertClient(ctx context.Context, q database.DBTX, req domain.ClientRequest) (*domain.Client, error) {
	var clientID, personID int64
	err := q.QueryRowContext(ctx,
		`SELECT id, person_id FROM clients WHERE nit = $1 FOR UPDATE`, req.NIT,
	).Scan(&clientID, &personID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := q.QueryRowContext(ctx,
			`INSERT INTO people (first_name, last_name, phone) VALUES ($1, $2, $3) RETURNING id`,
			req.FirstName, req.LastName, req.Phone,
		).Scan(&personID); err != nil {
			return nil, fmt.Errorf("insert person: %w", err)
		}
		if err := q.QueryRowContext(ctx,
			`INSERT INTO clients (nit, person_id) VALUES ($1, $2) RETURNING id`,
			req.NIT, personID,
		).Scan(&clientID); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, ErrClientConflict
			}
			return nil, fmt.Errorf("insert client: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("lock client: %w", err)
	default:
		if _, err := q.ExecContext(ctx, `
			UPDATE people SET
				first_name = COALESCE(NULLIF($2, ''), first_name),
				last_name  = COALESCE(NULLIF($3, ''), last_name),
				phone      = COALESCE(NULLIF($4, ''), phone),
				updated_at = NOW()
			WHERE id = $1`,
			personID, req.FirstName, req.LastName, req.Phone,
		); err != nil {
			return nil, fmt.Errorf("update person: %w", err)
		}
		if _, err := q.ExecContext(ctx, `UPDATE clients SET updated_at = NOW() WHERE id = $1`, clientID); err != nil {
			return nil, fmt.Errorf("touch client: %w", err)
		}
	}

	c, err := scanClient(q.QueryRowContext(ctx, clientSelect+` WHERE c.id = $1`, clientID))
	if err != nil {
		return nil, fmt.Errorf("reload client: %w", err)
	}
	return c, nil
}
