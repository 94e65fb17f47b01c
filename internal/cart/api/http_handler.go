package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/cart/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/cart/service"
	catalogrepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/middleware"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// RegisterRoutes mengharapkan router yang sudah dilindungi middleware.Auth.
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/carts/:kind")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.PUT("/lines", h.AddLine)
		// kode bearing bisa mengandung '/', misalnya NU205/C3
		cartRoutes.DELETE("/lines/*code", h.RemoveLine)
		cartRoutes.DELETE("", h.ClearCart)
	}
}

// scope mengambil operator dan kind dari request; menulis response error jika gagal.
func scope(c *gin.Context) (int64, domain.Kind, bool) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return 0, "", false
	}
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, "", false
	}
	return ownerID, kind, true
}

func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrEmptyCode),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalogrepo.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": catalogrepo.ErrProductNotFound.Error()})
	case errors.Is(err, service.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	ownerID, kind, ok := scope(c)
	if !ok {
		return
	}
	cart, err := h.cartService.GetCart(c.Request.Context(), ownerID, kind)
	if err != nil {
		writeError(c, "GetCart", err)
		return
	}
	c.JSON(http.StatusOK, cart.View())
}

func (h *CartHandler) AddLine(c *gin.Context) {
	ownerID, kind, ok := scope(c)
	if !ok {
		return
	}
	var req domain.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	cart, err := h.cartService.AddLine(c.Request.Context(), ownerID, kind, req)
	if err != nil {
		writeError(c, "AddLine", err)
		return
	}
	c.JSON(http.StatusOK, cart.View())
}

func (h *CartHandler) RemoveLine(c *gin.Context) {
	ownerID, kind, ok := scope(c)
	if !ok {
		return
	}
	code := strings.TrimPrefix(c.Param("code"), "/")
	cart, err := h.cartService.RemoveLine(c.Request.Context(), ownerID, kind, code)
	if err != nil {
		writeError(c, "RemoveLine", err)
		return
	}
	c.JSON(http.StatusOK, cart.View())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	ownerID, kind, ok := scope(c)
	if !ok {
		return
	}
	if err := h.cartService.ClearCart(c.Request.Context(), ownerID, kind); err != nil {
		writeError(c, "ClearCart", err)
		return
	}
	c.Status(http.StatusNoContent)
}
