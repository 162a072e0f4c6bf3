// Package repotest holds behaviour every domain.ProductRepository must share.
package repotest

import (
	"context"
	"math"
	"testing"

	"github.com/mrops-br/product-catalog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty repository for a single subtest
type Factory func(t *testing.T) domain.ProductRepository

// Run exercises repo implementations against the same expectations
func Run(t *testing.T, newRepo Factory) {
	t.Run("save assigns id and find returns it", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, domain.NewProduct("빵", "소금빵"))
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)

		found, ok, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, saved, found)
	})

	t.Run("find absent id reports not found without error", func(t *testing.T) {
		repo := newRepo(t)

		found, ok, err := repo.FindByID(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, found)
	})

	t.Run("save existing overwrites fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, domain.NewProduct("빵", "소금빵"))
		require.NoError(t, err)

		saved.Update("음료", "라떼")
		_, err = repo.Save(ctx, saved)
		require.NoError(t, err)

		found, ok, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "음료", found.Category)
		assert.Equal(t, "라떼", found.Name)
	})

	t.Run("delete removes product and tolerates absent ones", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, domain.NewProduct("빵", "소금빵"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, saved))
		_, ok, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, repo.Delete(ctx, saved))
	})

	t.Run("page by category", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		var bread []int64
		for _, name := range []string{"소금빵", "크루아상", "베이글"} {
			p, err := repo.Save(ctx, domain.NewProduct("빵", name))
			require.NoError(t, err)
			bread = append(bread, p.ID)
		}
		_, err := repo.Save(ctx, domain.NewProduct("음료", "아메리카노"))
		require.NoError(t, err)

		first, err := repo.FindPageByCategory(ctx, "빵", domain.PageRequest{Page: 0, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), first.TotalElements)
		assert.Equal(t, 2, first.TotalPages)
		require.Len(t, first.Items, 2)
		assert.Equal(t, bread[0], first.Items[0].ID)
		assert.Equal(t, bread[1], first.Items[1].ID)

		second, err := repo.FindPageByCategory(ctx, "빵", domain.PageRequest{Page: 1, Size: 2})
		require.NoError(t, err)
		require.Len(t, second.Items, 1)
		assert.Equal(t, bread[2], second.Items[0].ID)

		beyond, err := repo.FindPageByCategory(ctx, "빵", domain.PageRequest{Page: 5, Size: 2})
		require.NoError(t, err)
		assert.Empty(t, beyond.Items)
		assert.Equal(t, int64(3), beyond.TotalElements)

		none, err := repo.FindPageByCategory(ctx, "과자", domain.PageRequest{Page: 0, Size: 2})
		require.NoError(t, err)
		assert.Empty(t, none.Items)
		assert.Zero(t, none.TotalPages)
	})

	t.Run("page request out of range", func(t *testing.T) {
		repo := newRepo(t)

		for _, req := range []domain.PageRequest{
			{Page: -1, Size: 10},
			{Page: 0, Size: 0},
			{Page: 2, Size: math.MaxInt},
			{Page: math.MaxInt/4 + 1, Size: 4},
		} {
			_, err := repo.FindPageByCategory(context.Background(), "빵", req)
			assert.ErrorIs(t, err, domain.ErrInvalidPageRequest, "page=%d size=%d", req.Page, req.Size)
		}
	})

	t.Run("huge page size returns whole category", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"소금빵", "크루아상"} {
			_, err := repo.Save(ctx, domain.NewProduct("빵", name))
			require.NoError(t, err)
		}

		page, err := repo.FindPageByCategory(ctx, "빵", domain.PageRequest{Page: 0, Size: math.MaxInt})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 1, page.TotalPages)

		past, err := repo.FindPageByCategory(ctx, "빵", domain.PageRequest{Page: 1, Size: math.MaxInt})
		require.NoError(t, err)
		assert.Empty(t, past.Items)
		assert.Equal(t, int64(2), past.TotalElements)
	})

	t.Run("distinct categories sorted", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		empty, err := repo.ListDistinctCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		for _, c := range []string{"음료", "빵", "음료", "과자"} {
			_, err := repo.Save(ctx, domain.NewProduct(c, "x"))
			require.NoError(t, err)
		}

		categories, err := repo.ListDistinctCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"과자", "빵", "음료"}, categories)
	})
}
