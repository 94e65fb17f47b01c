package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/service"
)

type PlaceHandler struct {
	placeService service.PlaceService
}

func NewPlaceHandler(ps service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: ps}
}

func (h *PlaceHandler) RegisterRoutes(router *gin.RouterGroup) {
	placeRoutes := router.Group("/places")
	{
		placeRoutes.GET("", h.ListPlaces)
		placeRoutes.GET("/:id", h.GetPlace)
		placeRoutes.POST("", h.CreatePlace)
		placeRoutes.PUT("/:id", h.UpdatePlace)
		placeRoutes.DELETE("/:id", h.DeletePlace)
	}
}

func (h *PlaceHandler) ListPlaces(c *gin.Context) {
	places, err := h.placeService.ListPlaces(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, "ListPlaces", err)
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) GetPlace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	place, err := h.placeService.GetPlace(c.Request.Context(), id)
	if err != nil {
		writeError(c, "GetPlace", err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) CreatePlace(c *gin.Context) {
	var req domain.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "CreatePlace", err)
		return
	}
	place, err := h.placeService.CreatePlace(c.Request.Context(), req)
	if err != nil {
		writeError(c, "CreatePlace", err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

func (h *PlaceHandler) UpdatePlace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "UpdatePlace", err)
		return
	}
	place, err := h.placeService.UpdatePlace(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "UpdatePlace", err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) DeletePlace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.placeService.DeletePlace(c.Request.Context(), id); err != nil {
		writeError(c, "DeletePlace", err)
		return
	}
	c.Status(http.StatusNoContent)
}
