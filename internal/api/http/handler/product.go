package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

// ProductService defines business operations for catalog products.
type ProductService interface {
	Create(ctx context.Context, params model.CreateProductParams) (model.Product, error)
	Get(ctx context.Context, id int64) (model.Product, error)
	List(ctx context.Context, skip, limit int, categoryID *int64) ([]model.Product, error)
	Update(ctx context.Context, id int64, changes model.ProductChanges) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Product handles HTTP endpoints for catalog products.
type Product struct {
	service ProductService
	logger  *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(service ProductService, logger *logger.Logger) *Product {
	return &Product{
		service: service,
		logger:  logger,
	}
}

type createProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    int64   `json:"category_id"`
	ImageURL      *string `json:"image_url"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
	ImageURL      *string  `json:"image_url"`
}

type productResponse struct {
	ProductID     int64     `json:"product_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	CategoryID    int64     `json:"category_id"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProductResponse(product model.Product) productResponse {
	return productResponse{
		ProductID:     product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		CategoryID:    product.CategoryID,
		ImageURL:      product.ImageURL,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid request body")
		return
	}

	if req.Name == "" || req.CategoryID == 0 {
		writeError(w, http.StatusBadRequest, kindMalformed, "name and category_id are required")
		return
	}
	if req.Price < 0 || req.StockQuantity < 0 {
		writeError(w, http.StatusBadRequest, kindMalformed, "price and stock_quantity must be non-negative")
		return
	}

	product, err := h.service.Create(r.Context(), model.CreateProductParams{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid product id")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 0)

	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, kindMalformed, "invalid category_id filter")
			return
		}
		categoryID = &id
	}

	products, err := h.service.List(r.Context(), skip, limit, categoryID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid product id")
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid request body")
		return
	}

	if req.Price != nil && *req.Price < 0 {
		writeError(w, http.StatusBadRequest, kindMalformed, "price must be non-negative")
		return
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		writeError(w, http.StatusBadRequest, kindMalformed, "stock_quantity must be non-negative")
		return
	}

	product, err := h.service.Update(r.Context(), id, model.ProductChanges{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid product id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ackResponse{Message: "Product deleted successfully"})
}
