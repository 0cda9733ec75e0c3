package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

// Product implements catalog item operations. Every product belongs to an
// existing category; the reference is validated before anything is written.
type Product struct {
	productStore  model.ProductStore
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewProduct(productStore model.ProductStore, categoryStore model.CategoryStore, logger *logger.Logger) *Product {
	return &Product{
		productStore:  productStore,
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// Create adds a product after confirming its category exists. The foreign key
// on products.category_id backs the same rule at insert time.
func (s *Product) Create(ctx context.Context, params model.CreateProductParams) (model.Product, error) {
	_, err := s.categoryStore.GetByID(ctx, params.CategoryID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Product service: referenced category does not exist",
			"category_id", params.CategoryID)
		return model.Product{}, model.ErrUnknownCategory
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	product := model.Product{
		Name:          params.Name,
		Description:   params.Description,
		Price:         params.Price,
		StockQuantity: params.StockQuantity,
		CategoryID:    params.CategoryID,
		ImageURL:      params.ImageURL,
	}

	saved, err := s.productStore.Create(ctx, product)
	if err != nil {
		if errors.Is(err, model.ErrUnknownCategory) {
			return model.Product{}, err
		}
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product service: product created",
		"product_id", saved.ID)

	return saved, nil
}

func (s *Product) Get(ctx context.Context, id int64) (model.Product, error) {
	return s.productStore.GetByID(ctx, id)
}

func (s *Product) List(ctx context.Context, skip, limit int, categoryID *int64) ([]model.Product, error) {
	skip, limit = clampPage(skip, limit)

	products, err := s.productStore.List(ctx, skip, limit, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// Update applies a partial update. An entirely empty payload is rejected.
func (s *Product) Update(ctx context.Context, id int64, changes model.ProductChanges) (model.Product, error) {
	if _, err := s.productStore.GetByID(ctx, id); err != nil {
		return model.Product{}, err
	}

	if changes.Empty() {
		return model.Product{}, model.ErrEmptyUpdate
	}

	saved, err := s.productStore.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Product{}, err
		}
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info("Product service: product updated",
		"product_id", id)

	return saved, nil
}

func (s *Product) Delete(ctx context.Context, id int64) error {
	if err := s.productStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("Product service: product deleted",
		"product_id", id)

	return nil
}
