package validator

import (
	"context"

	"github.com/mrops-br/product-catalog-api/internal/domain"
)

// ProductValidator turns an absent product into a *domain.NotFoundError
type ProductValidator struct {
	repo domain.ProductRepository
}

func NewProductValidator(repo domain.ProductRepository) *ProductValidator {
	return &ProductValidator{repo: repo}
}

// RequireByID returns the stored product or a *domain.NotFoundError carrying id.
// Repository failures are returned unchanged.
func (v *ProductValidator) RequireByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, found, err := v.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{ID: id}
	}
	return product, nil
}
