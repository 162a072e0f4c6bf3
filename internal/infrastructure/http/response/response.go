package response

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mrops-br/product-catalog-api/internal/domain"
)

const (
	badRequestMessage = "Bad Request"
	// InternalErrorMessage is the only body clients see for unhandled failures
	InternalErrorMessage = "Internal Server Error"
)

// statusCoder is implemented by domain errors that carry their own HTTP status
type statusCoder interface {
	error
	StatusCode() int
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Text sends a plain string body
func Text(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

// Error translates err into a status and plain message and logs the cause.
// Causes of unhandled errors stay in the log.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, errorType, msg := classify(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(r.Context(), level, "Request failed",
		slog.Int("status", status),
		slog.String("error_type", errorType),
		slog.String("error_cause", err.Error()),
	)

	Text(w, status, msg)
}

func classify(err error) (status int, errorType, msg string) {
	var validationErr *domain.ValidationError
	var coded statusCoder
	switch {
	case errors.As(err, &validationErr):
		return validationErr.StatusCode(), "validation", validationErr.Message
	case errors.As(err, &coded):
		return coded.StatusCode(), "domain", coded.Error()
	case errors.Is(err, domain.ErrInvalidPageRequest):
		return http.StatusBadRequest, "invalid_page_request", badRequestMessage
	default:
		return http.StatusInternalServerError, "unhandled", InternalErrorMessage
	}
}
