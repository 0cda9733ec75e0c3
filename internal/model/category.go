package model

import (
	"context"
	"time"
)

// CategoryStore defines persistence operations for the category tree.
type CategoryStore interface {
	GetByID(ctx context.Context, id int64) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id int64, changes CategoryChanges) (Category, error)
	Delete(ctx context.Context, id int64) error
}

// Category is a node in the category tree. A nil ParentCategoryID marks a root.
type Category struct {
	ID               int64
	Name             string
	Description      *string
	ParentCategoryID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateCategoryParams carries the fields required to add a category.
type CreateCategoryParams struct {
	Name             string
	Description      *string
	ParentCategoryID *int64
}

// CategoryChanges is a sparse update: nil fields are left unchanged.
type CategoryChanges struct {
	Name             *string
	Description      *string
	ParentCategoryID *int64
}

// Empty reports whether no column is set.
func (c CategoryChanges) Empty() bool {
	return c.Name == nil && c.Description == nil && c.ParentCategoryID == nil
}
