package domain

import (
	"context"
)

// ProductRepository defines the contract for product storage.
// FindByID reports absence through found=false rather than an error.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (product *Product, found bool, err error)
	Save(ctx context.Context, product *Product) (*Product, error)
	Delete(ctx context.Context, product *Product) error
	FindPageByCategory(ctx context.Context, category string, req PageRequest) (Page[Product], error)
	ListDistinctCategories(ctx context.Context) ([]string, error)
}
