package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"go.uber.org/zap"
)

type postgresCartStore struct {
	db *sql.DB
}

func NewPostgresCartStore(db *sql.DB) CartStore {
	return &postgresCartStore{db: db}
}

func (r *postgresCartStore) Load(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	return loadCart(ctx, r.db, ownerID, kind)
}

// Update mengunci (owner, kind) dengan advisory lock transaksi, sehingga dua request
// dari operator yang sama tidak saling menimpa line.
func (r *postgresCartStore) Update(ctx context.Context, ownerID int64, kind domain.Kind, fn func(*domain.Cart) (bool, error)) (*domain.Cart, error) {
	var cart *domain.Cart
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		key := fmt.Sprintf("draft_cart:%d:%s", ownerID, kind)
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
			logger.Error("UpdateCart: lock failed", err, zap.Int64("owner_id", ownerID))
			return err
		}

		c, err := loadCart(ctx, tx, ownerID, kind)
		if err != nil {
			return err
		}
		if c == nil {
			c = domain.New(ownerID, kind)
		}
		changed, err := fn(c)
		if err != nil {
			return err
		}
		if changed {
			if err := saveCart(ctx, tx, c); err != nil {
				return err
			}
		}
		cart = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func loadCart(ctx context.Context, q database.DBTX, ownerID int64, kind domain.Kind) (*domain.Cart, error) {
	query := `SELECT lines, updated_at FROM draft_carts WHERE owner_id = $1 AND kind = $2`

	var raw []byte
	cart := domain.New(ownerID, kind)
	err := q.QueryRowContext(ctx, query, ownerID, string(kind)).Scan(&raw, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("LoadCart: query failed", err, zap.Int64("owner_id", ownerID), zap.String("kind", string(kind)))
		return nil, err
	}
	if err := json.Unmarshal(raw, &cart.Lines); err != nil {
		return nil, fmt.Errorf("corrupt draft cart for owner %d: %w", ownerID, err)
	}
	if cart.Lines == nil {
		cart.Lines = []domain.Line{}
	}
	return cart, nil
}

func saveCart(ctx context.Context, q database.DBTX, cart *domain.Cart) error {
	raw, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart lines: %w", err)
	}

	query := `INSERT INTO draft_carts (owner_id, kind, lines, updated_at)
              VALUES ($1, $2, $3, NOW())
              ON CONFLICT (owner_id, kind) DO UPDATE SET lines = EXCLUDED.lines, updated_at = NOW()
              RETURNING updated_at`
	err = q.QueryRowContext(ctx, query, cart.OwnerID, string(cart.Kind), raw).Scan(&cart.UpdatedAt)
	if err != nil {
		logger.Error("SaveCart: upsert failed", err, zap.Int64("owner_id", cart.OwnerID))
		return err
	}
	return nil
}

func (r *postgresCartStore) Delete(ctx context.Context, ownerID int64, kind domain.Kind) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM draft_carts WHERE owner_id = $1 AND kind = $2`, ownerID, string(kind))
	if err != nil {
		logger.Error("DeleteCart: exec failed", err, zap.Int64("owner_id", ownerID))
	}
	return err
}

func (r *postgresCartStore) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	threshold := time.Now().Add(-age)
	res, err := r.db.ExecContext(ctx, `DELETE FROM draft_carts WHERE updated_at < $1`, threshold)
	if err != nil {
		logger.Error("DeleteOlderThan: exec failed", err)
		return 0, err
	}
	return res.RowsAffected()
}
