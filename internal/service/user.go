package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

// User implements account operations: registration with uniqueness and
// password hashing, lookups, partial updates and deletion.
type User struct {
	userStore model.UserStore
	hasher    model.Hasher
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, hasher model.Hasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Create registers a user. The email is checked for uniqueness before the
// password is hashed or anything is written; the unique constraint on
// users.email catches the remaining race at insert time.
func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	_, err := s.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		s.logger.Info("User service: email already registered",
			"email", params.Email)
		return model.User{}, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Email:        params.Email,
		PasswordHash: passwordHash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PhoneNumber:  params.PhoneNumber,
	}

	saved, err := s.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", saved.ID)

	return saved, nil
}

func (s *User) Get(ctx context.Context, id int64) (model.User, error) {
	return s.userStore.GetByID(ctx, id)
}

func (s *User) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	skip, limit = clampPage(skip, limit)

	users, err := s.userStore.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Update applies a partial update. Validation runs in payload order before
// any column is written: an email change re-checks uniqueness excluding this
// user, a password change is hashed, and an entirely empty payload is
// rejected.
func (s *User) Update(ctx context.Context, id int64, params model.UpdateUserParams) (model.User, error) {
	if _, err := s.userStore.GetByID(ctx, id); err != nil {
		return model.User{}, err
	}

	changes := model.UserChanges{
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		PhoneNumber: params.PhoneNumber,
	}

	if params.Email != nil {
		taken, err := s.userStore.EmailTaken(ctx, *params.Email, id)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			s.logger.Info("User service: email already registered by another user",
				"user_id", id)
			return model.User{}, model.ErrDuplicateEmail
		}
		changes.Email = params.Email
	}

	if params.Password != nil {
		passwordHash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		changes.PasswordHash = &passwordHash
	}

	if changes.Empty() {
		return model.User{}, model.ErrEmptyUpdate
	}

	saved, err := s.userStore.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) || errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", id)

	return saved, nil
}

func (s *User) Delete(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}
