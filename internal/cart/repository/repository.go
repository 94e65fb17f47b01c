package repository

import (
	"context"
	"time"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
)

// CartStore menyimpan draft cart per (operator, kind).
type CartStore interface {
	// Load mengembalikan nil, nil jika belum ada draft.
	Load(ctx context.Context, ownerID int64, kind domain.Kind) (*domain.Cart, error)
	// Update menjalankan fn atas draft (atau cart kosong) secara atomik per (operator, kind).
	// Draft hanya disimpan jika fn mengembalikan true.
	Update(ctx context.Context, ownerID int64, kind domain.Kind, fn func(*domain.Cart) (bool, error)) (*domain.Cart, error)
	Delete(ctx context.Context, ownerID int64, kind domain.Kind) error
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
