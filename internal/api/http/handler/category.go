package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

// CategoryService defines business operations for the category tree.
type CategoryService interface {
	Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, changes model.CategoryChanges) (model.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Category handles HTTP endpoints for categories.
type Category struct {
	service CategoryService
	logger  *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(service CategoryService, logger *logger.Logger) *Category {
	return &Category{
		service: service,
		logger:  logger,
	}
}

type createCategoryRequest struct {
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *int64  `json:"parent_category_id"`
}

type updateCategoryRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *int64  `json:"parent_category_id"`
}

type categoryResponse struct {
	CategoryID       int64     `json:"category_id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	ParentCategoryID *int64    `json:"parent_category_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		CategoryID:       category.ID,
		Name:             category.Name,
		Description:      category.Description,
		ParentCategoryID: category.ParentCategoryID,
		CreatedAt:        category.CreatedAt,
		UpdatedAt:        category.UpdatedAt,
	}
}

func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, kindMalformed, "name is required")
		return
	}

	category, err := h.service.Create(r.Context(), model.CreateCategoryParams{
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, toCategoryResponse(category))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid category id")
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid request body")
		return
	}

	category, err := h.service.Update(r.Context(), id, model.CategoryChanges{
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid category id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ackResponse{Message: "Category deleted successfully"})
}
