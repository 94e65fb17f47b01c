package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	clientrepo "github.com/ridloal/rodamientos-backoffice/internal/client/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/domain"
	"go.uber.org/zap"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type SaleRepository interface {
	CreateSale(ctx context.Context, sale domain.NewSale) (*domain.Sale, error)
	ListSales(ctx context.Context, begin, end time.Time) ([]domain.Sale, error)
}

type postgresSaleRepository struct {
	db      *sql.DB
	clients clientrepo.ClientRepository
}

func NewPostgresSaleRepository(db *sql.DB, clients clientrepo.ClientRepository) SaleRepository {
	return &postgresSaleRepository{db: db, clients: clients}
}

// CreateSale menyimpan client, header, detail dan mengurangi stok dalam satu transaksi.
func (r *postgresSaleRepository) CreateSale(ctx context.Context, in domain.NewSale) (*domain.Sale, error) {
	var sale *domain.Sale
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		client, err := r.clients.UpsertClient(ctx, tx, in.Client)
		if err != nil {
			return err
		}

		sale = &domain.Sale{Client: *client, Total: in.Total, UserID: &in.UserID}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO sales (client_id, user_id, total) VALUES ($1, $2, $3) RETURNING id, created_at`,
			client.ID, in.UserID, in.Total,
		).Scan(&sale.ID, &sale.CreatedAt); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		// Detail disisipkan dulu: FK ke products membedakan produk yang sudah dihapus
		// (ErrProductNotFound) dari stok yang kurang, dan mengunci baris produk.
		for _, line := range in.Lines {
			detail := domain.SaleDetail{
				Product:   domain.ProductRef{ID: line.ProductID, Code: line.ProductCode},
				Quantity:  line.Quantity,
				SalePrice: line.Price,
			}
			if err := tx.QueryRowContext(ctx,
				`INSERT INTO sale_details (sale_id, product_id, quantity, sale_price) VALUES ($1, $2, $3, $4) RETURNING id`,
				sale.ID, line.ProductID, line.Quantity, line.Price,
			).Scan(&detail.ID); err != nil {
				if database.IsForeignKeyViolation(err) {
					return fmt.Errorf("%w: id %d", catalogrepo.ErrProductNotFound, line.ProductID)
				}
				return fmt.Errorf("insert sale detail: %w", err)
			}

			res, err := tx.ExecContext(ctx,
				`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`,
				line.Quantity, line.ProductID,
			)
			if err != nil {
				return fmt.Errorf("decrement stock for %s: %w", line.ProductCode, err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return fmt.Errorf("%w for product %s", ErrInsufficientStock, line.ProductCode)
			}
			sale.SaleDetail = append(sale.SaleDetail, detail)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientStock) && !errors.Is(err, catalogrepo.ErrProductNotFound) {
			logger.Error("CreateSale: transaction failed", err, zap.String("nit", in.Client.NIT))
		}
		return nil, err
	}
	return sale, nil
}

func (r *postgresSaleRepository) ListSales(ctx context.Context, begin, end time.Time) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.user_id, s.total, s.created_at,
		       c.id, c.nit, c.created_at, c.updated_at,
		       p.id, p.first_name, p.last_name, p.phone
		FROM sales s
		JOIN clients c ON c.id = s.client_id
		JOIN people p ON p.id = c.person_id
		WHERE s.created_at BETWEEN $1 AND $2
		ORDER BY s.created_at DESC, s.id DESC`, begin, end)
	if err != nil {
		logger.Error("ListSales: query failed", err)
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	index := map[int64]int{}
	for rows.Next() {
		var s domain.Sale
		var userID sql.NullInt64
		if err := rows.Scan(&s.ID, &userID, &s.Total, &s.CreatedAt,
			&s.Client.ID, &s.Client.NIT, &s.Client.CreatedAt, &s.Client.UpdatedAt,
			&s.Client.Person.ID, &s.Client.Person.FirstName, &s.Client.Person.LastName, &s.Client.Person.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if userID.Valid {
			s.UserID = &userID.Int64
		}
		s.SaleDetail = []domain.SaleDetail{}
		index[s.ID] = len(sales)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]int64, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	detailRows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.sale_id, d.product_id, pr.code, d.quantity, d.sale_price
		FROM sale_details d
		JOIN products pr ON pr.id = d.product_id
		WHERE d.sale_id = ANY($1)
		ORDER BY d.id`, pq.Array(ids))
	if err != nil {
		logger.Error("ListSales: detail query failed", err)
		return nil, fmt.Errorf("query sale details: %w", err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		var d domain.SaleDetail
		var saleID int64
		if err := detailRows.Scan(&d.ID, &saleID, &d.Product.ID, &d.Product.Code, &d.Quantity, &d.SalePrice); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		i := index[saleID]
		sales[i].SaleDetail = append(sales[i].SaleDetail, d)
	}
	return sales, detailRows.Err()
}
