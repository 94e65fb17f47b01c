package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"go.uber.org/zap"
)

// namedRow adalah bentuk bersama tabel brands dan places.
type namedRow struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// namedTable mengimplementasikan CRUD untuk tabel {id, name, description} yang
// direferensikan products lewat fkColumn. table dan fkColumn adalah konstanta internal.
type namedTable struct {
	db          *sql.DB
	table       string
	fkColumn    string
	errNotFound error
	errConflict error
	errInUse    error
}

func (t namedTable) list(ctx context.Context, search string) ([]namedRow, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM ` + t.table + `
              WHERE $1 = '' OR name ILIKE $1
              ORDER BY name ASC`
	rows, err := t.db.QueryContext(ctx, query, containsPattern(search))
	if err != nil {
		logger.Error("List "+t.table+": query failed", err)
		return nil, err
	}
	defer rows.Close()

	out := []namedRow{}
	for rows.Next() {
		var n namedRow
		var desc sql.NullString
		if err := rows.Scan(&n.ID, &n.Name, &desc, &n.CreatedAt, &n.UpdatedAt); err != nil {
			logger.Error("List "+t.table+": scan failed", err)
			return nil, err
		}
		if desc.Valid {
			n.Description = &desc.String
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (t namedTable) get(ctx context.Context, id int64) (*namedRow, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM ` + t.table + ` WHERE id = $1`
	var n namedRow
	var desc sql.NullString
	err := t.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.Name, &desc, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, t.errNotFound
		}
		logger.Error("Get "+t.table+": query failed", err, zap.Int64("id", id))
		return nil, err
	}
	if desc.Valid {
		n.Description = &desc.String
	}
	return &n, nil
}

func (t namedTable) products(ctx context.Context, id int64) ([]domain.ProductShort, error) {
	query := `SELECT id, code, stock, measures, price FROM products WHERE ` + t.fkColumn + ` = $1 ORDER BY code ASC`
	rows, err := t.db.QueryContext(ctx, query, id)
	if err != nil {
		logger.Error("Products of "+t.table+": query failed", err, zap.Int64("id", id))
		return nil, err
	}
	defer rows.Close()

	out := []domain.ProductShort{}
	for rows.Next() {
		var p domain.ProductShort
		if err := rows.Scan(&p.ID, &p.Code, &p.Stock, &p.Measures, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (t namedTable) create(ctx context.Context, req domain.NamedRequest) (*namedRow, error) {
	query := `INSERT INTO ` + t.table + ` (name, description, created_at, updated_at)
              VALUES ($1, $2, NOW(), NOW()) RETURNING id, created_at, updated_at`
	n := namedRow{Name: req.Name, Description: req.Description}
	err := t.db.QueryRowContext(ctx, query, req.Name, req.Description).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, t.errConflict
		}
		logger.Error("Create "+t.table+": insert failed", err)
		return nil, err
	}
	return &n, nil
}

func (t namedTable) update(ctx context.Context, id int64, req domain.NamedRequest) (*namedRow, error) {
	query := `UPDATE ` + t.table + ` SET name = $1, description = $2, updated_at = NOW()
              WHERE id = $3 RETURNING created_at, updated_at`
	n := namedRow{ID: id, Name: req.Name, Description: req.Description}
	err := t.db.QueryRowContext(ctx, query, req.Name, req.Description, id).Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, t.errNotFound
		}
		if database.IsUniqueViolation(err) {
			return nil, t.errConflict
		}
		logger.Error("Update "+t.table+": exec failed", err, zap.Int64("id", id))
		return nil, err
	}
	return &n, nil
}

func (t namedTable) delete(ctx context.Context, id int64) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM `+t.table+` WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return t.errInUse
		}
		logger.Error("Delete "+t.table+": exec failed", err, zap.Int64("id", id))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return t.errNotFound
	}
	return nil
}
