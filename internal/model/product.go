package model

import (
	"context"
	"time"
)

// ProductStore defines persistence operations for catalog products.
type ProductStore interface {
	GetByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context, skip, limit int, categoryID *int64) ([]Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, changes ProductChanges) (Product, error)
	Delete(ctx context.Context, id int64) error
}

// Product represents a catalog item belonging to a category.
type Product struct {
	ID            int64
	Name          string
	Description   *string
	Price         float64
	StockQuantity int
	CategoryID    int64
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateProductParams carries the fields required to add a product.
type CreateProductParams struct {
	Name          string
	Description   *string
	Price         float64
	StockQuantity int
	CategoryID    int64
	ImageURL      *string
}

// ProductChanges is a sparse update: nil fields are left unchanged. The
// category reference is fixed at creation and cannot be changed here.
type ProductChanges struct {
	Name          *string
	Description   *string
	Price         *float64
	StockQuantity *int
	ImageURL      *string
}

// Empty reports whether no column is set.
func (c ProductChanges) Empty() bool {
	return c.Name == nil && c.Description == nil && c.Price == nil &&
		c.StockQuantity == nil && c.ImageURL == nil
}
