package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/mrops-br/product-catalog-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProductRepository is an in-memory implementation of domain.ProductRepository
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(tracer trace.Tracer, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]domain.Product),
		nextID:   1,
		tracer:   tracer,
		logger:   logger,
	}
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, bool, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		r.logger.DebugContext(ctx, "Product absent in repository",
			slog.Int64("product_id", id),
		)
		span.SetStatus(codes.Ok, "Product absent")
		return nil, false, nil
	}

	span.SetStatus(codes.Ok, "Product found")
	return &product, true, nil
}

// Save inserts a product without an ID and overwrites one that has it
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Save")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if product.IsNew() {
		product.ID = r.nextID
		r.nextID++
	}
	r.products[product.ID] = *product

	span.SetAttributes(
		attribute.Int64("product.id", product.ID),
		attribute.String("product.category", product.Category),
	)
	r.logger.DebugContext(ctx, "Product saved in repository",
		slog.Int64("product_id", product.ID),
	)

	span.SetStatus(codes.Ok, "Product saved")
	saved := *product
	return &saved, nil
}

// Delete removes the product with the same ID; absent products are ignored
func (r *ProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	_, span := r.tracer.Start(ctx, "ProductRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", product.ID))

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, product.ID)

	span.SetStatus(codes.Ok, "Product deleted")
	return nil
}

// FindPageByCategory returns one page of products whose category equals category
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

	r.mu.RLock()
	matched := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Category != matched[j].Category {
			return matched[i].Category < matched[j].Category
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	start := min(req.Offset(), len(matched))
	end := start + min(req.Size, len(matched)-start)
	items := matched[start:end]

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
	_, span := r.tracer.Start(ctx, "ProductRepository.ListDistinctCategories")
	defer span.End()

	r.mu.RLock()
	seen := make(map[string]struct{}, len(r.products))
	categories := make([]string, 0)
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	r.mu.RUnlock()

	sort.Strings(categories)

	span.SetAttributes(attribute.Int("category.count", len(categories)))
	span.SetStatus(codes.Ok, "Categories retrieved")
	return categories, nil
}
