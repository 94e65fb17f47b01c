package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)
		productRoutes.POST("", h.CreateProduct)
		productRoutes.PUT("/:id", h.UpdateProduct)
		productRoutes.DELETE("/:id", h.DeleteProduct)
	}
}

// ListProducts: ?search= dicocokkan ke code, measures dan nama brand.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.productService.GetProductDetails(c.Request.Context(), id)
	if err != nil {
		writeError(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "CreateProduct", err)
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "UpdateProduct", err)
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, "DeleteProduct", err)
		return
	}
	c.Status(http.StatusNoContent)
}
