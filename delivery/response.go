package delivery

import (
	"context"
	"errors"
	"luxefurnish/domain"
	"luxefurnish/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// httpStatus maps a domain error kind to the status code sent to clients.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage hides errors that were not built for clients.
func clientMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Msg
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timeout"
	}
	return "Internal server error"
}

func respondError(c *gin.Context, who, function, message string, err error) {
	status := httpStatus(err)
	utils.PrintLogInfo(&who, status, function, &err)
	c.JSON(status, gin.H{"message": message, "error": clientMessage(err)})
}

func respondBindError(c *gin.Context, who, function string, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.PrintLogInfo(&who, http.StatusRequestEntityTooLarge, function+" - BindJSON", &err)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Request too large", "error": "request body exceeds the allowed size"})
		return
	}

	utils.PrintLogInfo(&who, http.StatusBadRequest, function+" - BindJSON", &err)
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": utils.TranslateValidationError(err)})
}
