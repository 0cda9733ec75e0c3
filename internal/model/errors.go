package model

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnknownCategory is returned when a referenced category does not exist.
	ErrUnknownCategory = errors.New("category does not exist")

	// ErrCategoryInUse is returned when deleting a category that products still reference.
	ErrCategoryInUse = errors.New("category is still referenced by products")

	// ErrSelfParent is returned when a category is set as its own parent.
	ErrSelfParent = errors.New("category cannot be its own parent")

	// ErrEmptyUpdate is returned when an update payload carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
)
