package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrops-br/product-catalog-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// ProductRepository is a gorm implementation of domain.ProductRepository
type ProductRepository struct {
	db     *gorm.DB
	tracer trace.Tracer
	logger *slog.Logger
}

// NewProductRepository creates a repository over the products table
func NewProductRepository(db *gorm.DB, tracer trace.Tracer, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		tracer: tracer,
		logger: logger,
	}
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, bool, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Ok, "Product absent")
			return nil, false, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load product")
		return nil, false, fmt.Errorf("find product %d: %w", id, err)
	}

	span.SetStatus(codes.Ok, "Product found")
	return &product, true, nil
}

// Save inserts a product without an ID and updates every mutable column otherwise
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Save")
	defer span.End()

	var err error
	if product.IsNew() {
		err = r.db.WithContext(ctx).Create(product).Error
	} else {
		err = r.db.WithContext(ctx).Model(product).
			Select("category", "name").
			Updates(map[string]any{"category": product.Category, "name": product.Name}).Error
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to save product")
		r.logger.ErrorContext(ctx, "Failed to save product",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("save product: %w", err)
	}

	span.SetAttributes(attribute.Int64("product.id", product.ID))
	span.SetStatus(codes.Ok, "Product saved")
	saved := *product
	return &saved, nil
}

// Delete removes the row with the product's ID
func (r *ProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", product.ID))

	if err := r.db.WithContext(ctx).Delete(&domain.Product{}, product.ID).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete product")
		return fmt.Errorf("delete product %d: %w", product.ID, err)
	}

	span.SetStatus(codes.Ok, "Product deleted")
	return nil
}

// FindPageByCategory returns one page of products whose category equals category,
// ordered by category ascending
func (r *ProductRepository) FindPageByCategory(ctx context.Context, category string, req domain.PageRequest) (domain.Page[domain.Product], error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindPageByCategory")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.category", category),
		attribute.Int("page.index", req.Page),
		attribute.Int("page.size", req.Size),
	)

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid page request")
		return domain.Page[domain.Product]{}, err
	}

	query := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("category = ?", category).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to count products")
		return domain.Page[domain.Product]{}, fmt.Errorf("count products: %w", err)
	}

	var items []domain.Product
	if err := query.Order("category asc").Order("id asc").
		Offset(req.Offset()).Limit(req.Size).
		Find(&items).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list products")
		return domain.Page[domain.Product]{}, fmt.Errorf("list products: %w", err)
	}

	span.SetAttributes(attribute.Int64("page.total_elements", total))
	r.logger.DebugContext(ctx, "Products page retrieved from repository",
		slog.String("category", category),
		slog.Int("count", len(items)),
		slog.Int64("total", total),
	)

	span.SetStatus(codes.Ok, "Products page retrieved")
	return domain.NewPage(items, req, total), nil
}

// ListDistinctCategories returns each category once, sorted ascending
func (r *ProductRepository) ListDistinctCategories(ctx context.Context) ([]string, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.ListDistinctCategories")
	defer span.End()

	categories := make([]string, 0)
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list categories")
		return nil, fmt.Errorf("list categories: %w", err)
	}

	span.SetAttributes(attribute.Int("category.count", len(categories)))
	span.SetStatus(codes.Ok, "Categories retrieved")
	return categories, nil
}
