package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	cartdomain "github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/middleware"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/timerange"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/shopping/service"
	"go.uber.org/zap"
)

type ShoppingHandler struct {
	shoppingService service.ShoppingService
}

func NewShoppingHandler(ss service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: ss}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	shoppingRoutes := router.Group("/shopping")
	{
		shoppingRoutes.POST("", h.CreateShopping)
		shoppingRoutes.POST("/checkout", h.CheckoutDraft)
		shoppingRoutes.GET("", h.ListShopping)
	}
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, timerange.ErrInvalidRange),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrInvalidPrice),
		errors.Is(err, cartdomain.ErrEmptyCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalogrepo.ErrProductNotFound),
		errors.Is(err, catalogrepo.ErrProviderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process purchase"})
	}
}

func (h *ShoppingHandler) CreateShopping(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	var req domain.CreateShoppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("CreateShopping: bad request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	shopping, err := h.shoppingService.CreateShopping(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, "CreateShopping", err)
		return
	}
	c.JSON(http.StatusCreated, shopping)
}

func (h *ShoppingHandler) CheckoutDraft(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	shopping, err := h.shoppingService.CheckoutDraft(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, "CheckoutDraft", err)
		return
	}
	c.JSON(http.StatusCreated, shopping)
}

func (h *ShoppingHandler) ListShopping(c *gin.Context) {
	list, err := h.shoppingService.ListShopping(c.Request.Context(), c.Query("begin"), c.Query("end"))
	if err != nil {
		writeError(c, "ListShopping", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
