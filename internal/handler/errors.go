package handler

import (
	"errors"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service-layer errors onto HTTP statuses. Anything
// not recognized is treated as an internal error.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	case errors.Is(err, service.ErrDuplicateRefundPeriod):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
	case errors.Is(err, service.ErrNoActiveConfig):
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, err.Error()))
	default:
		if ve, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, ve.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
	}
}
