package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/middleware"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/timerange"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/service"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixedParser int64

func (p fixedParser) ParseToken(string) (int64, error) { return int64(p), nil }

func newRouter(svc service.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSaleHandler(svc).RegisterRoutes(r.Group("/api", middleware.Auth(fixedParser(9))))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaleHandler_CreateSale(t *testing.T) {
	svc := new(mocks.MockSaleService)
	r := newRouter(svc)

	body := `{"nit":"4455667","firstName":"Ana","lastName":"Rojas","phone":"70000000",
		"products":[{"productId":1,"productCode":"6204","quantity":2,"salePrice":"35.50"}]}`

	t.Run("Created", func(t *testing.T) {
		svc.On("CreateSale", mock.Anything, int64(9), mock.MatchedBy(func(req domain.CreateSaleRequest) bool {
			return req.NIT == "4455667" && len(req.Products) == 1 && req.Products[0].SalePrice != nil && req.Products[0].SalePrice.Equal(decimal.RequireFromString("35.5"))
		})).Return(&domain.Sale{ID: 1, Total: decimal.NewFromInt(71)}, nil).Once()

		w := do(r, http.MethodPost, "/api/sales", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"total":"71"`)
	})

	t.Run("Missing nit fails binding", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/sales", `{"products":[{"productId":1,"quantity":1}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Line with zero quantity fails binding", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/sales", `{"nit":"1","products":[{"productId":1,"quantity":0}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error mapping", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{service.ErrEmptyCart, http.StatusBadRequest},
			{catalogrepo.ErrProductNotFound, http.StatusNotFound},
			{repository.ErrInsufficientStock, http.StatusConflict},
		}
		for _, tc := range cases {
			svc.On("CreateSale", mock.Anything, int64(9), mock.Anything).Return(nil, tc.err).Once()
			w := do(r, http.MethodPost, "/api/sales", body)
			assert.Equal(t, tc.status, w.Code, tc.err.Error())
		}
	})
	svc.AssertExpectations(t)
}

func TestSaleHandler_CheckoutDraft(t *testing.T) {
	svc := new(mocks.MockSaleService)
	r := newRouter(svc)

	svc.On("CheckoutDraft", mock.Anything, int64(9), mock.MatchedBy(func(req domain.CheckoutRequest) bool {
		return req.NIT == "4455667"
	})).Return(&domain.Sale{ID: 3}, nil).Once()

	w := do(r, http.MethodPost, "/api/sales/checkout", `{"nit":"4455667"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestSaleHandler_ListSales(t *testing.T) {
	svc := new(mocks.MockSaleService)
	r := newRouter(svc)

	svc.On("ListSales", mock.Anything, "2024-03-01", "2024-03-31").Return([]domain.Sale{{ID: 2}}, nil).Once()
	svc.On("ListSales", mock.Anything, "", "").Return(nil, timerange.ErrInvalidRange).Once()

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/sales?begin=2024-03-01&end=2024-03-31", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/sales", "").Code)
	svc.AssertExpectations(t)
}
