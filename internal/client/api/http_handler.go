package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/client/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/client/service"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(cs service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/clients/:nit", h.GetClient)
}

// GetClient dipakai konsol untuk mengisi nama dan telepon dari NIT.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetClientByNIT(c.Request.Context(), c.Param("nit"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyNIT):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("GetClient: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client"})
		}
		return
	}
	c.JSON(http.StatusOK, client)
}
