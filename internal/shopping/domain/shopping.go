package domain

import (
	"time"

	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/shopspring/decimal"
)

type ProductRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type ProviderRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ShoppingDetail struct {
	ID            int64           `json:"id"`
	Product       ProductRef      `json:"product"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// Shopping adalah pembelian dari provider; menambah stok.
type Shopping struct {
	ID             int64            `json:"id"`
	Provider       ProviderRef      `json:"provider"`
	UserID         *int64           `json:"userId,omitempty"`
	ShoppingDetail []ShoppingDetail `json:"shoppingDetail"`
	Total          decimal.Decimal  `json:"total"`
	CreatedAt      time.Time        `json:"createdAt"`
}

type ShoppingLine struct {
	ProductID     int64            `json:"productId" binding:"required,gt=0"`
	ProductCode   string           `json:"productCode"`
	Quantity      int              `json:"quantity" binding:"required,gt=0"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"` // kosong = harga produk
}

type CreateShoppingRequest struct {
	ProviderID int64          `json:"providerId" binding:"required,gt=0"`
	Products   []ShoppingLine `json:"products" binding:"dive"`
}

type CheckoutRequest struct {
	ProviderID int64 `json:"providerId" binding:"required,gt=0"`
}

type NewShopping struct {
	UserID   int64
	Provider ProviderRef
	Lines    []cartdomain.Line
	Total    decimal.Decimal
}

type ShoppingRecordedEvent struct {
	ShoppingID int64             `json:"shoppingId"`
	ProviderID int64             `json:"providerId"`
	UserID     int64             `json:"userId"`
	Lines      []cartdomain.Line `json:"lines"`
	Total      decimal.Decimal   `json:"total"`
	RecordedAt time.Time         `json:"recordedAt"`
}
