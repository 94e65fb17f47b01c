package service

import (
	"context"
	"fmt"

	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	catalogdomain "github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
)

// ProductCatalog dipenuhi oleh catalog ProductService.
type ProductCatalog interface {
	GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]catalogdomain.Product, error)
}

// ResolveLines mengisi kode produk dari katalog lalu menggabungkan line per kode.
// Kode yang dikirim client diabaikan; harga kosong diisi harga katalog, sama seperti
// AddLine. ID yang tidak dikenal menghasilkan ErrProductNotFound.
func ResolveLines(ctx context.Context, catalog ProductCatalog, inputs []domain.LineInput) ([]domain.Line, map[int64]catalogdomain.Product, error) {
	ids := make([]int64, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ProductID
	}
	products, err := catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup products: %w", err)
	}

	resolved := make([]domain.Line, len(inputs))
	for i, in := range inputs {
		p, ok := products[in.ProductID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: id %d", catalogrepo.ErrProductNotFound, in.ProductID)
		}
		price := p.Price
		if in.Price != nil {
			price = *in.Price
		}
		resolved[i] = domain.Line{ProductID: p.ID, ProductCode: p.Code, Quantity: in.Quantity, Price: price}
	}

	merged, err := domain.Merge(resolved)
	if err != nil {
		return nil, nil, err
	}
	return merged, products, nil
}
