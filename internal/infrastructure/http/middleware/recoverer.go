package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/mrops-br/product-catalog-api/internal/infrastructure/http/response"
)

// Recoverer turns a panic in a handler into a logged 500 with the generic
// error body instead of an empty response
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.ErrorContext(r.Context(), "Recovered from panic",
					slog.String("panic", fmt.Sprint(rvr)),
					slog.String("stack", string(debug.Stack())),
				)
				response.Text(w, http.StatusInternalServerError, response.InternalErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
