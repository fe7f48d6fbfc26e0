package handlers

import (
	"errors"
	"net/http"

	"blueriver/models"
	"blueriver/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, models.ErrSlotInPast):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes err as a JSON error response.
func handleError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	details := err.Error()
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		details = "please try again later"
	}
	utils.JSONError(c, status, message, details)
}
