package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/storefront-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userSelect = `SELECT user_id, email, password_hash, first_name, last_name, phone_number, created_at, updated_at
			  FROM users`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE user_id = $1`, id))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// EmailTaken reports whether email belongs to a user other than excludeID.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND user_id <> $2)`

	if err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	return taken, nil
}

func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	rows, err := r.db.Query(ctx, userSelect+` ORDER BY user_id LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, nil
}

// Create inserts the user and re-reads the stored row inside one transaction
// so the returned value carries the generated id and timestamps. A unique
// violation on email maps to model.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	query := `INSERT INTO users (email, password_hash, first_name, last_name, phone_number)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING user_id`

	err = tx.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	saved, err := scanUser(tx.QueryRow(ctx, userSelect+` WHERE user_id = $1`, id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read created user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.User{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// Update writes exactly the columns present in changes and re-reads the row
// inside one transaction. Columns absent from changes are never touched.
func (r *UserRepository) Update(ctx context.Context, id int64, changes model.UserChanges) (model.User, error) {
	if changes.Empty() {
		return model.User{}, model.ErrEmptyUpdate
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	b := &setBuilder{}
	if changes.Email != nil {
		b.Set("email", *changes.Email)
	}
	if changes.PasswordHash != nil {
		b.Set("password_hash", *changes.PasswordHash)
	}
	if changes.FirstName != nil {
		b.Set("first_name", *changes.FirstName)
	}
	if changes.LastName != nil {
		b.Set("last_name", *changes.LastName)
	}
	if changes.PhoneNumber != nil {
		b.Set("phone_number", *changes.PhoneNumber)
	}

	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = now() WHERE user_id = $%d`, b.Clause(), b.Next())

	tag, err := tx.Exec(ctx, query, append(b.args, id)...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.User{}, model.ErrNotFound
	}

	saved, err := scanUser(tx.QueryRow(ctx, userSelect+` WHERE user_id = $1`, id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read updated user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.User{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
