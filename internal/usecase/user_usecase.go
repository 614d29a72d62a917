// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"users/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Username   string   `validate:"required,max=255"`
	Password   string   `validate:"required,max=72"`
	Provider   string   `validate:"max=255"`
	FamilyName string   `validate:"required,max=255"`
	GivenName  string   `validate:"required,max=255"`
	MiddleName string   `validate:"max=255"`
	Emails     []string `validate:"dive,max=255"`
	Photos     []string `validate:"dive,max=1024"`
}

// UpdateUserInput carries the fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Password   *string   `validate:"omitnil,min=1,max=72"`
	Provider   *string   `validate:"omitnil,max=255"`
	FamilyName *string   `validate:"omitnil,min=1,max=255"`
	GivenName  *string   `validate:"omitnil,min=1,max=255"`
	MiddleName *string   `validate:"omitnil,max=255"`
	Emails     *[]string `validate:"omitnil,dive,max=255"`
	Photos     *[]string `validate:"omitnil,dive,max=1024"`
}

// ProfileInput is an identity handed over by an external provider. ID becomes the username.
type ProfileInput struct {
	ID         string   `validate:"required,max=255"`
	Password   string   `validate:"max=72"`
	Provider   string   `validate:"max=255"`
	FamilyName string   `validate:"required,max=255"`
	GivenName  string   `validate:"required,max=255"`
	MiddleName string   `validate:"max=255"`
	Emails     []string `validate:"dive,max=255"`
	Photos     []string `validate:"dive,max=1024"`
}

// UserUsecase is the user repository contract. Every user it returns is
// sanitized, and it behaves the same whichever store backs it.
type UserUsecase interface {
	// Create hashes the password and stores a new user.
	Create(ctx context.Context, input *CreateUserInput) (*entity.SanitizedUser, error)

	// Find returns nil without error when the username is unknown.
	Find(ctx context.Context, username string) (*entity.SanitizedUser, error)

	// Update merges the supplied fields, re-hashing a new password.
	Update(ctx context.Context, username string, input *UpdateUserInput) (*entity.SanitizedUser, error)

	// Destroy deletes the user and reports whether one existed.
	Destroy(ctx context.Context, username string) (bool, error)

	// UserPasswordCheck never fails; every negative outcome has the same shape.
	UserPasswordCheck(ctx context.Context, username, password string) *entity.PasswordCheck

	// FindOrCreate returns the user keyed by profile.ID, creating it on first sight.
	FindOrCreate(ctx context.Context, profile *ProfileInput) (*entity.SanitizedUser, error)

	// ListUsers returns every user; the slice is never nil.
	ListUsers(ctx context.Context) ([]*entity.SanitizedUser, error)
}
