package response

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrops-br/product-catalog-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLog    string
	}{
		{
			name:       "not found carries its status and message",
			err:        &domain.NotFoundError{ID: 7},
			wantStatus: http.StatusNotFound,
			wantBody:   "프로덕트를 찾을 수 없습니다 ID : 7",
			wantLog:    "level=WARN",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get: %w", &domain.NotFoundError{ID: 8}),
			wantStatus: http.StatusNotFound,
			wantBody:   "프로덕트를 찾을 수 없습니다 ID : 8",
		},
		{
			name:       "validation failure",
			err:        &domain.ValidationError{Message: "상품 이름은 공백일 수 없습니다."},
			wantStatus: http.StatusBadRequest,
			wantBody:   "상품 이름은 공백일 수 없습니다.",
		},
		{
			name:       "invalid page request",
			err:        domain.ErrInvalidPageRequest,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Bad Request",
		},
		{
			name:       "unhandled error hides its cause",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
			wantLog:    "level=ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
			rec := httptest.NewRecorder()

			Error(rec, req, logger, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			assert.Contains(t, logs.String(), "error_cause=")
			if tc.wantLog != "" {
				assert.Contains(t, logs.String(), tc.wantLog)
			}
		})
	}
}
