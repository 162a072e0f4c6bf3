package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mrops-br/product-catalog-api/internal/app/dto"
	"github.com/mrops-br/product-catalog-api/internal/app/validator"
	"github.com/mrops-br/product-catalog-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ProductService handles product use cases
type ProductService struct {
	repo                  domain.ProductRepository
	validator             *validator.ProductValidator
	tracer                trace.Tracer
	logger                *slog.Logger
	productCreatedCounter metric.Int64Counter
	productOperations     metric.Int64Counter
}

// NewProductService creates a new product service
func NewProductService(
	repo domain.ProductRepository,
	productValidator *validator.ProductValidator,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProductService {
	// Initialize metrics
	productCreatedCounter, _ := meter.Int64Counter(
		"products.created.total",
		metric.WithDescription("Total number of products created"),
	)

	productOperations, _ := meter.Int64Counter(
		"products.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProductService{
		repo:                  repo,
		validator:             productValidator,
		tracer:                tracer,
		logger:                logger,
		productCreatedCounter: productCreatedCounter,
		productOperations:     productOperations,
	}
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.CreateProduct")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.category", req.Category),
		attribute.String("product.name", req.Name),
	)

	s.logger.InfoContext(ctx, "Creating product",
		slog.String("category", req.Category),
		slog.String("name", req.Name),
	)

	product, err := s.repo.Save(ctx, domain.NewProduct(req.Category, req.Name))
	if err != nil {
		s.fail(ctx, span, "create", "Failed to store product", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("product.id", product.ID))

	s.productCreatedCounter.Add(ctx, 1)
	s.record(ctx, "create", "success")

	s.logger.InfoContext(ctx, "Product created successfully",
		slog.Int64("product_id", product.ID),
	)

	span.SetStatus(codes.Ok, "Product created successfully")
	return dto.ToProductResponse(product), nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetProduct")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	product, err := s.validator.RequireByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, "read", "Failed to retrieve product", err)
		return nil, err
	}

	s.record(ctx, "read", "success")

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return dto.ToProductResponse(product), nil
}

// UpdateProduct replaces category and name of an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.UpdateProduct")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	product, err := s.validator.RequireByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, "update", "Failed to retrieve product", err)
		return nil, err
	}

	product.Update(req.Category, req.Name)

	updated, err := s.repo.Save(ctx, product)
	if err != nil {
		s.fail(ctx, span, "update", "Failed to store product", err)
		return nil, err
	}

	s.record(ctx, "update", "success")

	s.logger.InfoContext(ctx, "Product updated successfully",
		slog.Int64("product_id", id),
		slog.String("category", updated.Category),
		slog.String("name", updated.Name),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return dto.ToProductResponse(updated), nil
}

// DeleteProduct removes an existing product and returns its last state
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.DeleteProduct")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	product, err := s.validator.RequireByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, "delete", "Failed to retrieve product", err)
		return nil, err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		s.fail(ctx, span, "delete", "Failed to delete product", err)
		return nil, err
	}

	s.record(ctx, "delete", "success")

	s.logger.InfoContext(ctx, "Product deleted successfully",
		slog.Int64("product_id", id),
	)

	span.SetStatus(codes.Ok, "Product deleted successfully")
	return dto.ToProductResponse(product), nil
}

// ListByCategory returns one page of products in category.
// page and size reach the repository as given.
func (s *ProductService) ListByCategory(ctx context.Context, category string, page, size int) (*dto.ProductListResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListByCategory")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.category", category),
		attribute.Int("page.index", page),
		attribute.Int("page.size", size),
	)

	result, err := s.repo.FindPageByCategory(ctx, category, domain.PageRequest{Page: page, Size: size})
	if err != nil {
		s.fail(ctx, span, "list", "Failed to retrieve products", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.count", len(result.Items)))
	s.record(ctx, "list", "success")

	s.logger.InfoContext(ctx, "Products listed successfully",
		slog.String("category", category),
		slog.Int("count", len(result.Items)),
		slog.Int64("total", result.TotalElements),
	)

	span.SetStatus(codes.Ok, "Products listed successfully")
	return dto.ToProductListResponse(result), nil
}

// ListDistinctCategories returns every category present in storage
func (s *ProductService) ListDistinctCategories(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListDistinctCategories")
	defer span.End()

	categories, err := s.repo.ListDistinctCategories(ctx)
	if err != nil {
		s.fail(ctx, span, "categories", "Failed to retrieve categories", err)
		return nil, err
	}

	s.record(ctx, "categories", "success")

	span.SetStatus(codes.Ok, "Categories listed successfully")
	return categories, nil
}

func (s *ProductService) record(ctx context.Context, operation, result string) {
	s.productOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}

// fail marks the span, logs and counts a failed operation
func (s *ProductService) fail(ctx context.Context, span trace.Span, operation, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	result := "failure"
	var notFound *domain.NotFoundError
	switch {
	case errors.As(err, &notFound):
		result = "not_found"
		s.logger.WarnContext(ctx, "Product not found",
			slog.Int64("product_id", notFound.ID),
		)
	case errors.Is(err, domain.ErrInvalidPageRequest):
		result = "invalid"
		s.logger.WarnContext(ctx, msg, slog.String("error", err.Error()))
	default:
		s.logger.ErrorContext(ctx, msg, slog.String("error", err.Error()))
	}

	s.record(ctx, operation, result)
}
