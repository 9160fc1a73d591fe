package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pagespec_server/internal/types"
)

// statusFor maps a core error onto an HTTP status.
func statusFor(err error) int {
	var validationErr *types.ValidationError
	var packagingErr *types.PackagingError
	var malformedErr *types.MalformedInputError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &malformedErr):
		return http.StatusBadRequest
	case errors.As(err, &packagingErr):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {ok:false, error, issues?} and logs server-side failures.
func (h *APIHandler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	body := ErrorResponse{Error: err.Error()}

	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		body.Issues = validationErr.Issues
	}

	if status >= http.StatusInternalServerError {
		h.log.WithFields(map[string]any{
			"path":       c.FullPath(),
			"request_id": c.GetString(requestIDKey),
		}).Error(err, "request failed")
	}
	c.AbortWithStatusJSON(status, body)
}
