package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/product-catalog-api/internal/app/dto"
	"github.com/mrops-br/product-catalog-api/internal/app/service"
	"github.com/mrops-br/product-catalog-api/internal/domain"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/http/response"
)

const (
	// DefaultPageSize applies when the size query parameter is absent
	DefaultPageSize = 20

	maxBodyBytes = 1 << 20
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// GetProduct handles GET /products/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := h.decode(w, r, &req); err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// UpdateProduct handles PUT /products/{productId}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := h.decode(w, r, &req); err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{productId}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	product, err := h.service.DeleteProduct(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// ListProducts handles GET /products?category=&page=&size=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := intParam(query.Get("page"), 0)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}
	size, err := intParam(query.Get("size"), DefaultPageSize)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	products, err := h.service.ListByCategory(r.Context(), query.Get("category"), page, size)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// ListCategories handles GET /products/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListDistinctCategories(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

// decode reads a JSON body into dst and checks its constraints
func (h *ProductHandler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		return badRequest(fmt.Errorf("decode body: %w", err))
	}
	return dto.Validate(dst)
}

func productID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, badRequest(fmt.Errorf("parse product id %q: %w", raw, err))
	}
	return id, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(fmt.Errorf("parse query parameter %q: %w", raw, err))
	}
	return v, nil
}

// malformedRequestError keeps the parse failure for logs while clients only see Bad Request
type malformedRequestError struct {
	*domain.ValidationError
	cause error
}

func (e *malformedRequestError) Error() string { return e.cause.Error() }

func (e *malformedRequestError) Unwrap() []error { return []error{e.ValidationError, e.cause} }

func badRequest(cause error) error {
	return &malformedRequestError{
		ValidationError: &domain.ValidationError{Message: dto.BadRequestMessage},
		cause:           cause,
	}
}
