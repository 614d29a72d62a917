// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"users/internal/domain/entity"
)

// ErrUserNotFound is returned by a store when no record matches the username.
var ErrUserNotFound = errors.New("user not found")

// UserStore is the persistence contract that every backend satisfies identically.
// Stores deal in full records, password hash included; hashing and sanitization
// happen above this layer.
type UserStore interface {
	// Create inserts a new record. A taken username yields domain ErrDuplicateIdentity.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername returns the stored record or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update merges patch into the stored record and returns the result, or ErrUserNotFound.
	Update(ctx context.Context, username string, patch *entity.UserPatch) (*entity.User, error)

	// Delete removes the record and reports whether one existed.
	Delete(ctx context.Context, username string) (bool, error)

	// List returns every record in backend-native order.
	List(ctx context.Context) ([]*entity.User, error)
}
