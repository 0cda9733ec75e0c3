package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/storefront-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

const categorySelect = `SELECT category_id, name, description, parent_category_id, created_at, updated_at
			  FROM categories`

type CategoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func scanCategory(row pgx.Row) (model.Category, error) {
	var category model.Category
	err := row.Scan(
		&category.ID, &category.Name, &category.Description, &category.ParentCategoryID,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, err
	}

	return category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	category, err := scanCategory(r.db.QueryRow(ctx, categorySelect+` WHERE category_id = $1`, id))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, categorySelect+` ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category rows: %w", err)
	}

	return categories, nil
}

// Create inserts the category and re-reads the stored row inside one
// transaction. A foreign-key violation on parent_category_id maps to
// model.ErrUnknownCategory.
func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	query := `INSERT INTO categories (name, description, parent_category_id)
			  VALUES ($1, $2, $3)
			  RETURNING category_id`

	err = tx.QueryRow(ctx, query,
		category.Name, category.Description, category.ParentCategoryID,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Category{}, model.ErrUnknownCategory
		}
		return model.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}

	saved, err := scanCategory(tx.QueryRow(ctx, categorySelect+` WHERE category_id = $1`, id))
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to read created category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Category{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// Update writes exactly the columns present in changes and re-reads the row
// inside one transaction.
func (r *CategoryRepository) Update(ctx context.Context, id int64, changes model.CategoryChanges) (model.Category, error) {
	if changes.Empty() {
		return model.Category{}, model.ErrEmptyUpdate
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	b := &setBuilder{}
	if changes.Name != nil {
		b.Set("name", *changes.Name)
	}
	if changes.Description != nil {
		b.Set("description", *changes.Description)
	}
	if changes.ParentCategoryID != nil {
		b.Set("parent_category_id", *changes.ParentCategoryID)
	}

	query := fmt.Sprintf(`UPDATE categories SET %s, updated_at = now() WHERE category_id = $%d`, b.Clause(), b.Next())

	tag, err := tx.Exec(ctx, query, append(b.args, id)...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Category{}, model.ErrUnknownCategory
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Category{}, model.ErrNotFound
	}

	saved, err := scanCategory(tx.QueryRow(ctx, categorySelect+` WHERE category_id = $1`, id))
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to read updated category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Category{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// Delete removes a category. Products reference categories with ON DELETE
// RESTRICT, so deleting a category that still has products maps to
// model.ErrCategoryInUse. Child categories get their parent set to NULL.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
