package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/session"
)

const (
	errTypeValidation   = "validation_error"
	errTypeUnauthorized = "unauthorized"
	errTypeForbidden    = "forbidden"
	errTypeProcessing   = "processing_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(c *gin.Context, status int, body any) {
	respBytes, err := json.Marshal(body)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to marshal response", slog.String("error", err.Error()))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(status, "application/json", respBytes)
}

func respondError(c *gin.Context, status int, errType, message string) {
	respondJSON(c, status, &ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondAuthError maps session errors to 401/403. It reports whether err was one.
func respondAuthError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respondError(c, http.StatusUnauthorized, errTypeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondError(c, http.StatusForbidden, errTypeForbidden, err.Error())
	default:
		return false
	}
	return true
}

// requireOperator writes 401 and returns nil when the request is anonymous.
func requireOperator(c *gin.Context) *domain.Operator {
	operator := session.OperatorFromContext(c.Request.Context())
	if operator == nil {
		respondAuthError(c, domain.ErrUnauthenticated)
		return nil
	}
	return operator
}

// requireAdmin writes 401 or 403 and returns false unless the caller is an admin.
func requireAdmin(c *gin.Context) bool {
	operator := requireOperator(c)
	if operator == nil {
		return false
	}
	if !operator.IsAdmin() {
		respondAuthError(c, domain.ErrForbidden)
		return false
	}
	return true
}
