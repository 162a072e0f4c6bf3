package gormrepo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mrops-br/product-catalog-api/internal/domain"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/config"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/database"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/repository/repotest"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newSQLiteRepository(t *testing.T) domain.ProductRepository {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(&config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProductRepository(db, noop.NewTracerProvider().Tracer("test"), logger)
}

func TestProductRepository(t *testing.T) {
	repotest.Run(t, newSQLiteRepository)
}
