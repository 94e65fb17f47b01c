package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/catalog/service"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("id must be a positive integer")

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID.Error()})
		return 0, false
	}
	return id, true
}

// writeError memetakan error repository/service ke status HTTP.
func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrBrandNotFound),
		errors.Is(err, repository.ErrPlaceNotFound),
		errors.Is(err, repository.ErrProviderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrProductConflict),
		errors.Is(err, repository.ErrBrandConflict),
		errors.Is(err, repository.ErrPlaceConflict),
		errors.Is(err, repository.ErrProductInUse),
		errors.Is(err, repository.ErrBrandInUse),
		errors.Is(err, repository.ErrPlaceInUse),
		errors.Is(err, repository.ErrProviderInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidReference),
		errors.Is(err, service.ErrEmptyCode),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, op string, err error) {
	logger.Warn(op+": bad request", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
}
