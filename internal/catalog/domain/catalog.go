package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductShort struct {
	ID       int64           `json:"id"`
	Code     string          `json:"code"`
	Stock    int             `json:"stock"`
	Measures string          `json:"measures"`
	Price    decimal.Decimal `json:"price"`
}

type Product struct {
	ID        int64           `json:"id"`
	Code      string          `json:"code"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	Measures  string          `json:"measures"`
	Brand     Ref             `json:"brand"`
	Place     Ref             `json:"place"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ProductRequest struct {
	Code     string          `json:"code" binding:"required"`
	Measures string          `json:"measures"`
	Price    decimal.Decimal `json:"price"`
	Stock    *int            `json:"stock" binding:"omitempty,gte=0"`
	BrandID  int64           `json:"brandId" binding:"required,gt=0"`
	PlaceID  int64           `json:"placeId" binding:"required,gt=0"`
}

type Brand struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Products    []ProductShort `json:"products"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type Place struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Products    []ProductShort `json:"products"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// NamedRequest dipakai untuk brand dan place.
type NamedRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type Provider struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProviderRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}
