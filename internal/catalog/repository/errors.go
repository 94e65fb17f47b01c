package repository

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductConflict  = errors.New("product with this code already exists")
	ErrProductInUse     = errors.New("product is referenced by recorded transactions")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrBrandConflict    = errors.New("brand with this name already exists")
	ErrBrandInUse       = errors.New("brand still has products")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrPlaceConflict    = errors.New("place with this name already exists")
	ErrPlaceInUse       = errors.New("place still has products")
	ErrProviderNotFound = errors.New("provider not found")
	ErrProviderInUse    = errors.New("provider is referenced by recorded purchases")
	ErrInvalidReference = errors.New("brand or place does not exist")
)
