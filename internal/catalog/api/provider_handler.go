package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/service"
)

type ProviderHandler struct {
	providerService service.ProviderService
}

func NewProviderHandler(ps service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: ps}
}

func (h *ProviderHandler) RegisterRoutes(router *gin.RouterGroup) {
	providerRoutes := router.Group("/providers")
	{
		providerRoutes.GET("", h.ListProviders)
		providerRoutes.GET("/:id", h.GetProvider)
		providerRoutes.POST("", h.CreateProvider)
		providerRoutes.PUT("/:id", h.UpdateProvider)
		providerRoutes.DELETE("/:id", h.DeleteProvider)
	}
}

func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.providerService.ListProviders(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, "ListProviders", err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	provider, err := h.providerService.GetProvider(c.Request.Context(), id)
	if err != nil {
		writeError(c, "GetProvider", err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req domain.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "CreateProvider", err)
		return
	}
	provider, err := h.providerService.CreateProvider(c.Request.Context(), req)
	if err != nil {
		writeError(c, "CreateProvider", err)
		return
	}
	c.JSON(http.StatusCreated, provider)
}

func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "UpdateProvider", err)
		return
	}
	provider, err := h.providerService.UpdateProvider(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "UpdateProvider", err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.providerService.DeleteProvider(c.Request.Context(), id); err != nil {
		writeError(c, "DeleteProvider", err)
		return
	}
	c.Status(http.StatusNoContent)
}
