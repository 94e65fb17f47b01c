package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/service"
)

type BrandHandler struct {
	brandService service.BrandService
}

func NewBrandHandler(bs service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: bs}
}

func (h *BrandHandler) RegisterRoutes(router *gin.RouterGroup) {
	brandRoutes := router.Group("/brands")
	{
		brandRoutes.GET("", h.ListBrands)
		brandRoutes.GET("/:id", h.GetBrand)
		brandRoutes.POST("", h.CreateBrand)
		brandRoutes.PUT("/:id", h.UpdateBrand)
		brandRoutes.DELETE("/:id", h.DeleteBrand)
	}
}

func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandService.ListBrands(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, "ListBrands", err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	brand, err := h.brandService.GetBrand(c.Request.Context(), id)
	if err != nil {
		writeError(c, "GetBrand", err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req domain.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "CreateBrand", err)
		return
	}
	brand, err := h.brandService.CreateBrand(c.Request.Context(), req)
	if err != nil {
		writeError(c, "CreateBrand", err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "UpdateBrand", err)
		return
	}
	brand, err := h.brandService.UpdateBrand(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "UpdateBrand", err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.brandService.DeleteBrand(c.Request.Context(), id); err != nil {
		writeError(c, "DeleteBrand", err)
		return
	}
	c.Status(http.StatusNoContent)
}
