package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates service-layer errors into HTTP responses.
// Unrecognized errors become a 500 with the fallback message so internal
// detail never leaks to clients.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already exists"})
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}
