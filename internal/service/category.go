package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

// Category implements category tree operations. A category may reference a
// parent category but never itself.
type Category struct {
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewCategory(categoryStore model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categoryStore: categoryStore,
		logger:        logger,
	}
}

func (s *Category) Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error) {
	category := model.Category{
		Name:             params.Name,
		Description:      params.Description,
		ParentCategoryID: params.ParentCategoryID,
	}

	saved, err := s.categoryStore.Create(ctx, category)
	if err != nil {
		if errors.Is(err, model.ErrUnknownCategory) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category service: category created",
		"category_id", saved.ID)

	return saved, nil
}

func (s *Category) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Update applies a partial update. A parent reference equal to the category's
// own id is rejected before any column is written, as is an empty payload.
func (s *Category) Update(ctx context.Context, id int64, changes model.CategoryChanges) (model.Category, error) {
	if _, err := s.categoryStore.GetByID(ctx, id); err != nil {
		return model.Category{}, err
	}

	if changes.ParentCategoryID != nil && *changes.ParentCategoryID == id {
		s.logger.Info("Category service: rejected self-referencing parent",
			"category_id", id)
		return model.Category{}, model.ErrSelfParent
	}

	if changes.Empty() {
		return model.Category{}, model.ErrEmptyUpdate
	}

	saved, err := s.categoryStore.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrUnknownCategory) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info("Category service: category updated",
		"category_id", id)

	return saved, nil
}

func (s *Category) Delete(ctx context.Context, id int64) error {
	if err := s.categoryStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrCategoryInUse) {
			return err
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("Category service: category deleted",
		"category_id", id)

	return nil
}
