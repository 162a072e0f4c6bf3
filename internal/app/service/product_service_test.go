package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mrops-br/product-catalog-api/internal/app/dto"
	"github.com/mrops-br/product-catalog-api/internal/app/validator"
	"github.com/mrops-br/product-catalog-api/internal/domain"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace/noop"
)

// spyRepo wraps a real repository, records paging arguments and can fail on demand
type spyRepo struct {
	domain.ProductRepository
	lastPageRequest domain.PageRequest
	lastCategory    string
	saveErr         error
	deleted         []int64
}

func (r *spyRepo) Save(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	return r.ProductRepository.Save(ctx, p)
}

func (r *spyRepo) Delete(ctx context.Context, p *domain.Product) error {
	r.deleted = append(r.deleted, p.ID)
	return r.ProductRepository.Delete(ctx, p)
}

func (r *spyRepo) FindPageByCategory(ctx context.Context, category string, req domain.PageRequest) (domain.Page[domain.Product], error) {
	r.lastCategory = category
	r.lastPageRequest = req
	return r.ProductRepository.FindPageByCategory(ctx, category, req)
}

func setup(t *testing.T) (*ProductService, *spyRepo) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	repo := &spyRepo{ProductRepository: memory.NewProductRepository(tracer, logger)}
	svc := NewProductService(repo, validator.NewProductValidator(repo), tracer, metricnoop.NewMeterProvider().Meter("test"), logger)
	return svc, repo
}

func TestCreateProduct(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Category: "빵", Name: "소금빵"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "빵", created.Category)
	assert.Equal(t, "소금빵", created.Name)

	loaded, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestCreateProductStorageFailure(t *testing.T) {
	svc, repo := setup(t)
	repo.saveErr = errors.New("disk full")

	_, err := svc.CreateProduct(context.Background(), &dto.CreateProductRequest{Category: "빵", Name: "소금빵"})
	assert.ErrorIs(t, err, repo.saveErr)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.GetProduct(context.Background(), 999999)

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 404, nf.StatusCode())
	assert.Contains(t, err.Error(), "999999")
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	created, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Category: "빵", Name: "소금빵"})
	require.NoError(t, err)

	t.Run("Replaces both fields", func(t *testing.T) {
		updated, err := svc.UpdateProduct(ctx, created.ID, &dto.UpdateProductRequest{Category: "음료", Name: "아메리카노"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "음료", updated.Category)
		assert.Equal(t, "아메리카노", updated.Name)

		loaded, err := svc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "음료", loaded.Category)
		assert.Equal(t, "아메리카노", loaded.Name)
	})

	t.Run("Fails for missing product", func(t *testing.T) {
		_, err := svc.UpdateProduct(ctx, 424242, &dto.UpdateProductRequest{Category: "음료", Name: "라떼"})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})
}

func TestDeleteProduct(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	created, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Category: "빵", Name: "소금빵"})
	require.NoError(t, err)

	deleted, err := svc.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted, "delete should return the pre-deletion view")
	assert.Equal(t, []int64{created.ID}, repo.deleted)

	_, err = svc.GetProduct(ctx, created.ID)
	var nf *domain.NotFoundError
	assert.True(t, errors.As(err, &nf))

	t.Run("Second delete fails with not found", func(t *testing.T) {
		_, err := svc.DeleteProduct(ctx, created.ID)
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
		assert.Len(t, repo.deleted, 1, "repository delete must not run for a missing product")
	})
}

func TestListByCategory(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	for _, req := range []dto.CreateProductRequest{
		{Category: "빵", Name: "소금빵"},
		{Category: "빵", Name: "크루아상"},
		{Category: "음료", Name: "아메리카노"},
	} {
		_, err := svc.CreateProduct(ctx, &req)
		require.NoError(t, err)
	}

	t.Run("Single matching record", func(t *testing.T) {
		resp, err := svc.ListByCategory(ctx, "음료", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.TotalElements)
		assert.Equal(t, 1, resp.TotalPages)
		assert.Equal(t, 0, resp.Page)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "음료", resp.Products[0].Category)
	})

	t.Run("Totals cover the whole filtered set", func(t *testing.T) {
		resp, err := svc.ListByCategory(ctx, "빵", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.TotalElements)
		assert.Equal(t, 2, resp.TotalPages)
		assert.Equal(t, 1, resp.Page)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "크루아상", resp.Products[0].Name)
	})

	t.Run("Paging arguments pass through unchanged", func(t *testing.T) {
		_, err := svc.ListByCategory(ctx, "빵", -1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPageRequest)
		assert.Equal(t, "빵", repo.lastCategory)
		assert.Equal(t, domain.PageRequest{Page: -1, Size: 0}, repo.lastPageRequest)
	})
}

func TestListDistinctCategories(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	for _, category := range []string{"빵", "음료", "빵"} {
		_, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Category: category, Name: "item"})
		require.NoError(t, err)
	}

	categories, err := svc.ListDistinctCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.ElementsMatch(t, []string{"빵", "음료"}, categories)
}
