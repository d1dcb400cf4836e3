package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/service/insight"
)

// respondError maps service errors onto status codes and the JSON error body.
func respondError(c *gin.Context, err error) {
	var (
		verrs    models.ValidationErrors
		upstream *insight.UpstreamError
	)

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "invalid measurement",
			Fields: verrs.ByField(),
		})
	case errors.Is(err, insight.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "Failed to generate AI analysis",
			Details: upstream.Err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Details: err.Error()})
	}
}

func badRequest(c *gin.Context, msg string, err error) {
	body := models.ErrorResponse{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}
