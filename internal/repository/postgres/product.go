package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/storefront-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

const productSelect = `SELECT product_id, name, description, price, stock_quantity, category_id, image_url, created_at, updated_at
			  FROM products`

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var product model.Product
	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.StockQuantity,
		&product.CategoryID, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, err
	}

	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE product_id = $1`, id))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Product{}, err
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

// List returns a page of products, optionally restricted to one category.
func (r *ProductRepository) List(ctx context.Context, skip, limit int, categoryID *int64) ([]model.Product, error) {
	var rows pgx.Rows
	var err error

	if categoryID != nil {
		rows, err = r.db.Query(ctx,
			productSelect+` WHERE category_id = $1 ORDER BY product_id LIMIT $2 OFFSET $3`,
			*categoryID, limit, skip)
	} else {
		rows, err = r.db.Query(ctx,
			productSelect+` ORDER BY product_id LIMIT $1 OFFSET $2`,
			limit, skip)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

// Create inserts the product and re-reads the stored row inside one
// transaction. A foreign-key violation on category_id maps to
// model.ErrUnknownCategory.
func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	query := `INSERT INTO products (name, description, price, stock_quantity, category_id, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING product_id`

	err = tx.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.StockQuantity,
		product.CategoryID, product.ImageURL,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Product{}, model.ErrUnknownCategory
		}
		return model.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	saved, err := scanProduct(tx.QueryRow(ctx, productSelect+` WHERE product_id = $1`, id))
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to read created product: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Product{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// Update writes exactly the columns present in changes and re-reads the row
// inside one transaction.
func (r *ProductRepository) Update(ctx context.Context, id int64, changes model.ProductChanges) (model.Product, error) {
	if changes.Empty() {
		return model.Product{}, model.ErrEmptyUpdate
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	b := &setBuilder{}
	if changes.Name != nil {
		b.Set("name", *changes.Name)
	}
	if changes.Description != nil {
		b.Set("description", *changes.Description)
	}
	if changes.Price != nil {
		b.Set("price", *changes.Price)
	}
	if changes.StockQuantity != nil {
		b.Set("stock_quantity", *changes.StockQuantity)
	}
	if changes.ImageURL != nil {
		b.Set("image_url", *changes.ImageURL)
	}

	query := fmt.Sprintf(`UPDATE products SET %s, updated_at = now() WHERE product_id = $%d`, b.Clause(), b.Next())

	tag, err := tx.Exec(ctx, query, append(b.args, id)...)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Product{}, model.ErrNotFound
	}

	saved, err := scanProduct(tx.QueryRow(ctx, productSelect+` WHERE product_id = $1`, id))
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to read updated product: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Product{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
