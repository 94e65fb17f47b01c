package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	clientrepo "github.com/ridloal/rodamientos-backoffice/internal/client/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/middleware"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/timerange"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/sale/service"
	"go.uber.org/zap"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(ss service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

func (h *SaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	saleRoutes := router.Group("/sales")
	{
		saleRoutes.POST("", h.CreateSale)
		saleRoutes.POST("/checkout", h.CheckoutDraft)
		saleRoutes.GET("", h.ListSales)
	}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrEmptyNIT),
		errors.Is(err, timerange.ErrInvalidRange),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrInvalidPrice),
		errors.Is(err, cartdomain.ErrEmptyCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalogrepo.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientStock),
		errors.Is(err, clientrepo.ErrClientConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process sale"})
	}
}

func operator(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
	}
	return userID, ok
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	userID, ok := operator(c)
	if !ok {
		return
	}
	var req domain.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("CreateSale: bad request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	sale, err := h.saleService.CreateSale(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, "CreateSale", err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SaleHandler) CheckoutDraft(c *gin.Context) {
	userID, ok := operator(c)
	if !ok {
		return
	}
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("CheckoutDraft: bad request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	sale, err := h.saleService.CheckoutDraft(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, "CheckoutDraft", err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// ListSales: ?begin=&end= wajib, RFC 3339 atau YYYY-MM-DD.
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context(), c.Query("begin"), c.Query("end"))
	if err != nil {
		writeError(c, "ListSales", err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
