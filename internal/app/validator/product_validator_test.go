package validator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mrops-br/product-catalog-api/internal/domain"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type failingRepo struct {
	domain.ProductRepository
	err error
}

func (f *failingRepo) FindByID(context.Context, int64) (*domain.Product, bool, error) {
	return nil, false, f.err
}

func TestRequireByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(noop.NewTracerProvider().Tracer("test"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	saved, err := repo.Save(ctx, domain.NewProduct("빵", "소금빵"))
	require.NoError(t, err)

	v := NewProductValidator(repo)

	t.Run("existing product", func(t *testing.T) {
		product, err := v.RequireByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "소금빵", product.Name)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := v.RequireByID(ctx, 999999)

		var nf *domain.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, int64(999999), nf.ID)
		assert.Equal(t, 404, nf.StatusCode())
		assert.Contains(t, err.Error(), "999999")
	})

	t.Run("repository failure is not a not-found", func(t *testing.T) {
		boom := errors.New("connection refused")
		_, err := NewProductValidator(&failingRepo{err: boom}).RequireByID(ctx, 1)

		assert.ErrorIs(t, err, boom)
		var nf *domain.NotFoundError
		assert.False(t, errors.As(err, &nf))
	})
}
