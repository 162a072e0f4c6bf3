package dto

import (
	"github.com/mrops-br/product-catalog-api/internal/domain"
)

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Category string `json:"category" validate:"notblank,max=100"`
	Name     string `json:"name" validate:"notblank,max=100"`
}

// UpdateProductRequest replaces both fields of a product
type UpdateProductRequest struct {
	Category string `json:"category" validate:"notblank,max=100"`
	Name     string `json:"name" validate:"notblank,max=100"`
}

// ProductResponse is the view of a product returned to clients
type ProductResponse struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// ProductListResponse is one page of product views
type ProductListResponse struct {
	Products      []*ProductResponse `json:"products"`
	TotalPages    int                `json:"totalPages"`
	TotalElements int64              `json:"totalElements"`
	Page          int                `json:"page"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Category: p.Category,
		Name:     p.Name,
	}
}

// ToProductListResponse converts a page of domain Products to ProductListResponse
func ToProductListResponse(page domain.Page[domain.Product]) *ProductListResponse {
	products := make([]*ProductResponse, len(page.Items))
	for i := range page.Items {
		products[i] = ToProductResponse(&page.Items[i])
	}
	return &ProductListResponse{
		Products:      products,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Page:          page.Page,
	}
}
