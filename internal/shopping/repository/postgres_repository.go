package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/domain"
	"go.uber.org/zap"
)

type ShoppingRepository interface {
	CreateShopping(ctx context.Context, shopping domain.NewShopping) (*domain.Shopping, error)
	ListShopping(ctx context.Context, begin, end time.Time) ([]domain.Shopping, error)
}

type postgresShoppingRepository struct {
	db *sql.DB
}

func NewPostgresShoppingRepository(db *sql.DB) ShoppingRepository {
	return &postgresShoppingRepository{db: db}
}

// CreateShopping menyimpan header, detail dan menambah stok dalam satu transaksi.
func (r *postgresShoppingRepository) CreateShopping(ctx context.Context, in domain.NewShopping) (*domain.Shopping, error) {
	var shopping *domain.Shopping
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		shopping = &domain.Shopping{Provider: in.Provider, Total: in.Total, UserID: &in.UserID}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO shopping (provider_id, user_id, total) VALUES ($1, $2, $3) RETURNING id, created_at`,
			in.Provider.ID, in.UserID, in.Total,
		).Scan(&shopping.ID, &shopping.CreatedAt); err != nil {
			if database.IsForeignKeyViolation(err) {
				return catalogrepo.ErrProviderNotFound
			}
			return fmt.Errorf("insert shopping: %w", err)
		}

		for _, line := range in.Lines {
			res, err := tx.ExecContext(ctx,
				`UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`,
				line.Quantity, line.ProductID,
			)
			if err != nil {
				return fmt.Errorf("increment stock for %s: %w", line.ProductCode, err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return fmt.Errorf("%w: id %d", catalogrepo.ErrProductNotFound, line.ProductID)
			}

			detail := domain.ShoppingDetail{
				Product:       domain.ProductRef{ID: line.ProductID, Code: line.ProductCode},
				Quantity:      line.Quantity,
				PurchasePrice: line.Price,
			}
			if err := tx.QueryRowContext(ctx,
				`INSERT INTO shopping_details (shopping_id, product_id, quantity, purchase_price) VALUES ($1, $2, $3, $4) RETURNING id`,
				shopping.ID, line.ProductID, line.Quantity, line.Price,
			).Scan(&detail.ID); err != nil {
				return fmt.Errorf("insert shopping detail: %w", err)
			}
			shopping.ShoppingDetail = append(shopping.ShoppingDetail, detail)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, catalogrepo.ErrProviderNotFound) && !errors.Is(err, catalogrepo.ErrProductNotFound) {
			logger.Error("CreateShopping: transaction failed", err, zap.Int64("provider_id", in.Provider.ID))
		}
		return nil, err
	}
	return shopping, nil
}

func (r *postgresShoppingRepository) ListShopping(ctx context.Context, begin, end time.Time) ([]domain.Shopping, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.user_id, s.total, s.created_at, pv.id, pv.name
		FROM shopping s
		JOIN providers pv ON pv.id = s.provider_id
		WHERE s.created_at BETWEEN $1 AND $2
		ORDER BY s.created_at DESC, s.id DESC`, begin, end)
	if err != nil {
		logger.Error("ListShopping: query failed", err)
		return nil, fmt.Errorf("query shopping: %w", err)
	}
	defer rows.Close()

	list := []domain.Shopping{}
	index := map[int64]int{}
	for rows.Next() {
		var s domain.Shopping
		var userID sql.NullInt64
		if err := rows.Scan(&s.ID, &userID, &s.Total, &s.CreatedAt, &s.Provider.ID, &s.Provider.Name); err != nil {
			return nil, fmt.Errorf("scan shopping: %w", err)
		}
		if userID.Valid {
			s.UserID = &userID.Int64
		}
		s.ShoppingDetail = []domain.ShoppingDetail{}
		index[s.ID] = len(list)
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]int64, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	detailRows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.shopping_id, d.product_id, pr.code, d.quantity, d.purchase_price
		FROM shopping_details d
		JOIN products pr ON pr.id = d.product_id
		WHERE d.shopping_id = ANY($1)
		ORDER BY d.id`, pq.Array(ids))
	if err != nil {
		logger.Error("ListShopping: detail query failed", err)
		return nil, fmt.Errorf("query shopping details: %w", err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		var d domain.ShoppingDetail
		var shoppingID int64
		if err := detailRows.Scan(&d.ID, &shoppingID, &d.Product.ID, &d.Product.Code, &d.Quantity, &d.PurchasePrice); err != nil {
			return nil, fmt.Errorf("scan shopping detail: %w", err)
		}
		i := index[shoppingID]
		list[i].ShoppingDetail = append(list[i].ShoppingDetail, d)
	}
	return list, detailRows.Err()
}
