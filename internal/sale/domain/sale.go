package domain

import (
	"time"

	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	clientdomain "github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/shopspring/decimal"
)

type ProductRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type SaleDetail struct {
	ID        int64           `json:"id"`
	Product   ProductRef      `json:"product"`
	Quantity  int             `json:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice"`
}

type Sale struct {
	ID         int64               `json:"id"`
	Client     clientdomain.Client `json:"client"`
	UserID     *int64              `json:"userId,omitempty"`
	SaleDetail []SaleDetail        `json:"saleDetail"`
	Total      decimal.Decimal     `json:"total"`
	CreatedAt  time.Time           `json:"createdAt"`
}

type SaleLine struct {
	ProductID   int64            `json:"productId" binding:"required,gt=0"`
	ProductCode string           `json:"productCode"`
	Quantity    int              `json:"quantity" binding:"required,gt=0"`
	SalePrice   *decimal.Decimal `json:"salePrice"` // kosong = harga produk
}

// CheckoutRequest adalah header penjualan; item diambil dari draft cart operator.
type CheckoutRequest struct {
	clientdomain.ClientRequest
}

type CreateSaleRequest struct {
	clientdomain.ClientRequest
	Products []SaleLine `json:"products" binding:"dive"`
}

// NewSale adalah penjualan yang sudah divalidasi dan siap disimpan.
type NewSale struct {
	UserID int64
	Client clientdomain.ClientRequest
	Lines  []cartdomain.Line
	Total  decimal.Decimal
}

type SaleRecordedEvent struct {
	SaleID     int64             `json:"saleId"`
	ClientNIT  string            `json:"clientNit"`
	UserID     int64             `json:"userId"`
	Lines      []cartdomain.Line `json:"lines"`
	Total      decimal.Decimal   `json:"total"`
	RecordedAt time.Time         `json:"recordedAt"`
}
