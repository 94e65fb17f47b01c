package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	svc := NewProductService(mockRepo)
	ctx := context.TODO()

	t.Run("Search is trimmed before reaching the repository", func(t *testing.T) {
		mockRepo.On("ListProducts", ctx, "6204").Return([]domain.Product{{ID: 1, Code: "6204"}}, nil).Once()

		products, err := svc.ListProducts(ctx, "  6204 ")
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo.On("ListProducts", ctx, "").Return(nil, errors.New("db error")).Once()

		products, err := svc.ListProducts(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, products)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_GetProductsByIDs(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	svc := NewProductService(mockRepo)
	ctx := context.TODO()

	mockRepo.On("GetProductsByIDs", ctx, []int64{3, 1}).Return([]domain.Product{
		{ID: 1, Code: "6204"},
		{ID: 3, Code: "6301"},
	}, nil).Once()

	found, err := svc.GetProductsByIDs(ctx, []int64{3, 1, 3})
	assert.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "6301", found[3].Code)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	svc := NewProductService(mockRepo)
	ctx := context.TODO()

	t.Run("Successful creation with trimmed code", func(t *testing.T) {
		req := domain.ProductRequest{Code: " 6204-ZZ ", Measures: "20x47x14", Price: decimal.NewFromInt(35), BrandID: 1, PlaceID: 2}
		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(r domain.ProductRequest) bool {
			return r.Code == "6204-ZZ" && r.Measures == "20x47x14"
		})).Return(&domain.Product{ID: 10, Code: "6204-ZZ"}, nil).Once()

		p, err := svc.CreateProduct(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), p.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Negative price is rejected", func(t *testing.T) {
		req := domain.ProductRequest{Code: "6204", Price: decimal.NewFromInt(-1), BrandID: 1, PlaceID: 1}

		p, err := svc.CreateProduct(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Nil(t, p)
	})

	t.Run("Price with more than two decimals is rejected", func(t *testing.T) {
		req := domain.ProductRequest{Code: "6204", Price: decimal.RequireFromString("12.345"), BrandID: 1, PlaceID: 1}

		_, err := svc.CreateProduct(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Blank code is rejected", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, domain.ProductRequest{Code: "   ", BrandID: 1, PlaceID: 1})
		assert.ErrorIs(t, err, ErrEmptyCode)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("domain.ProductRequest")).Return(nil, repository.ErrProductConflict).Once()

		_, err := svc.CreateProduct(ctx, domain.ProductRequest{Code: "6204", BrandID: 1, PlaceID: 1})
		assert.ErrorIs(t, err, repository.ErrProductConflict)
	})
}

func TestBrandService_CreateBrand(t *testing.T) {
	mockRepo := new(mocks.MockBrandRepository)
	svc := NewBrandService(mockRepo)
	ctx := context.TODO()

	blank := "   "
	mockRepo.On("CreateBrand", ctx, domain.NamedRequest{Name: "SKF"}).Return(&domain.Brand{ID: 1, Name: "SKF"}, nil).Once()

	b, err := svc.CreateBrand(ctx, domain.NamedRequest{Name: " SKF ", Description: &blank})
	assert.NoError(t, err)
	assert.Equal(t, "SKF", b.Name)
	mockRepo.AssertExpectations(t)

	_, err = svc.CreateBrand(ctx, domain.NamedRequest{Name: ""})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestPlaceService_DeletePlace(t *testing.T) {
	mockRepo := new(mocks.MockPlaceRepository)
	svc := NewPlaceService(mockRepo)
	ctx := context.TODO()

	mockRepo.On("DeletePlace", ctx, int64(4)).Return(repository.ErrPlaceInUse).Once()

	err := svc.DeletePlace(ctx, 4)
	assert.ErrorIs(t, err, repository.ErrPlaceInUse)
	mockRepo.AssertExpectations(t)
}

func TestProviderService_UpdateProvider(t *testing.T) {
	mockRepo := new(mocks.MockProviderRepository)
	svc := NewProviderService(mockRepo)
	ctx := context.TODO()

	mockRepo.On("UpdateProvider", ctx, int64(2), domain.ProviderRequest{Name: "Rodamientos Sur", Address: "Av. Blanco Galindo"}).
		Return(&domain.Provider{ID: 2, Name: "Rodamientos Sur"}, nil).Once()

	p, err := svc.UpdateProvider(ctx, 2, domain.ProviderRequest{Name: "Rodamientos Sur ", Address: " Av. Blanco Galindo"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
	mockRepo.AssertExpectations(t)
}
