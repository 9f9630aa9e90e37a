package response

import (
	"errors"
	"log/slog"
	"net/http"

	"bbdap/backend/internal/api/service"
	"bbdap/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// FromError translates a service-layer error into the matching HTTP response.
// Auth failures map to 401, validation conflicts to 400, missing resources to
// 404; anything unrecognized becomes an opaque 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrBadCredentials):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrDuplicateUsername):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTaskNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled error", "error", err, "path", c.FullPath())
		InternalError(c)
	}
}
