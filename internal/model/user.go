package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for user accounts.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	List(ctx context.Context, skip, limit int) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id int64, changes UserChanges) (User, error)
	Delete(ctx context.Context, id int64) error
}

// User represents a stored user account. PasswordHash never leaves the server.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserParams carries the fields required to register a user.
type CreateUserParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber *string
}

// UpdateUserParams is a sparse update payload: nil fields are left unchanged.
type UpdateUserParams struct {
	Email       *string
	Password    *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// UserChanges is the set of columns an update writes. Password is already
// hashed by the time it gets here.
type UserChanges struct {
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	PhoneNumber  *string
}

// Empty reports whether no column is set.
func (c UserChanges) Empty() bool {
	return c.Email == nil && c.PasswordHash == nil && c.FirstName == nil &&
		c.LastName == nil && c.PhoneNumber == nil
}
