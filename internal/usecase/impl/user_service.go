// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "users/internal/delivery/context"
	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/repository"
	"users/internal/domain/service"
	"users/internal/errors"
	"users/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	invalidCredentialsMessage = "Invalid credentials"

	// bcrypt ignores everything past this many bytes.
	maxPasswordBytes = 72
)

// userService implements the UserUsecase interface.
type userService struct {
	store    repository.UserStore
	hasher   service.PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger

	// decoyHash is compared against when the username is unknown, so that both
	// failure paths cost one bcrypt comparison.
	decoyHash func() (string, error)
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Store  repository.UserStore
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		store:    params.Store,
		hasher:   params.Hasher,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
	}
	srv.decoyHash = sync.OnceValues(func() (string, error) {
		return srv.hasher.Hash(uuid.NewString())
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input, hashes the password and stores the user.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.SanitizedUser, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.FamilyName = strings.TrimSpace(input.FamilyName)
	input.GivenName = strings.TrimSpace(input.GivenName)

	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.Wrap(err)
	}

	passwordHash, err := srv.hashPassword(ctx, input.Password, true)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Provider:     input.Provider,
		FamilyName:   input.FamilyName,
		GivenName:    input.GivenName,
		MiddleName:   input.MiddleName,
		Emails:       input.Emails,
		Photos:       input.Photos,
	}
	user.Normalize()

	if err := srv.store.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.String("username", user.Username))

	return entity.Sanitize(user), nil
}

// Find looks a user up by username. An unknown username is not an error.
func (srv *userService) Find(ctx context.Context, username string) (*entity.SanitizedUser, error) {
	user, err := srv.store.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return entity.Sanitize(user), nil
}

// Update merges the supplied fields into the stored user.
func (srv *userService) Update(ctx context.Context, username string, input *usecase.UpdateUserInput) (*entity.SanitizedUser, error) {
	username = strings.TrimSpace(username)
	trimPtr(input.FamilyName)
	trimPtr(input.GivenName)
	trimPtr(input.MiddleName)
	trimPtr(input.Provider)

	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.Wrap(err)
	}

	patch := &entity.UserPatch{
		Provider:   input.Provider,
		FamilyName: input.FamilyName,
		GivenName:  input.GivenName,
		MiddleName: input.MiddleName,
		Emails:     input.Emails,
		Photos:     input.Photos,
	}
	if patch.Provider != nil && *patch.Provider == "" {
		provider := entity.DefaultProvider
		patch.Provider = &provider
	}

	if input.Password != nil {
		passwordHash, err := srv.hashPassword(ctx, *input.Password, true)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &passwordHash
	}

	user, err := srv.store.Update(ctx, username, patch)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("cannot update unknown user")
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.String("username", username), slog.Bool("passwordChanged", input.Password != nil))

	return entity.Sanitize(user), nil
}

// Destroy removes the user and reports whether anything was deleted.
func (srv *userService) Destroy(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)

	existed, err := srv.store.Delete(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, "failed to destroy user")
	}

	srv.log(ctx).Debug("User destroy processed", slog.String("username", username), slog.Bool("existed", existed))

	return existed, nil
}

// UserPasswordCheck verifies a credential. Unknown user, wrong password and an
// unreachable store all produce the same negative result.
func (srv *userService) UserPasswordCheck(ctx context.Context, username, password string) *entity.PasswordCheck {
	username = strings.TrimSpace(username)

	user, err := srv.store.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if srv.hasher.Check(password, user.PasswordHash) {
			return &entity.PasswordCheck{Check: true, Username: username}
		}
		srv.log(ctx).Debug("Password check failed", slog.String("username", username), slog.String("reason", "password mismatch"))
	case errors.Is(err, repository.ErrUserNotFound):
		if decoy, hashErr := srv.decoyHash(); hashErr == nil {
			srv.hasher.Check(password, decoy)
		}
		srv.log(ctx).Debug("Password check failed", slog.String("username", username), slog.String("reason", "unknown user"))
	default:
		srv.log(ctx).Error("Password check could not read the user store", slog.String("username", username), slog.Any("error", err))
	}

	return &entity.PasswordCheck{Check: false, Username: username, Message: invalidCredentialsMessage}
}

// FindOrCreate returns the user keyed by profile.ID, creating it when absent.
// Losing a concurrent creation race returns the winner's record.
func (srv *userService) FindOrCreate(ctx context.Context, profile *usecase.ProfileInput) (*entity.SanitizedUser, error) {
	profile.ID = strings.TrimSpace(profile.ID)
	profile.FamilyName = strings.TrimSpace(profile.FamilyName)
	profile.GivenName = strings.TrimSpace(profile.GivenName)

	if err := srv.validate.Struct(profile); err != nil {
		return nil, domainerrors.ErrValidationFailed.Wrap(err)
	}

	existing, err := srv.store.FindByUsername(ctx, profile.ID)
	if err == nil {
		return entity.Sanitize(existing), nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up profile")
	}

	password, checkStrength := profile.Password, true
	if password == "" {
		// Externally authenticated identities get a secret nobody knows.
		password, checkStrength = uuid.NewString(), false
	}

	passwordHash, err := srv.hashPassword(ctx, password, checkStrength)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     profile.ID,
		PasswordHash: passwordHash,
		Provider:     profile.Provider,
		FamilyName:   profile.FamilyName,
		GivenName:    profile.GivenName,
		MiddleName:   profile.MiddleName,
		Emails:       profile.Emails,
		Photos:       profile.Photos,
	}
	user.Normalize()

	err = srv.store.Create(ctx, user)
	if errors.Is(err, domainerrors.ErrDuplicateIdentity) {
		srv.log(ctx).Debug("Profile created concurrently, returning stored record", slog.String("username", user.Username))

		winner, findErr := srv.store.FindByUsername(ctx, user.Username)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to read concurrently created profile")
		}

		return entity.Sanitize(winner), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Debug("Profile created", slog.String("username", user.Username), slog.String("provider", user.Provider))

	return entity.Sanitize(user), nil
}

// ListUsers returns every stored user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.SanitizedUser, error) {
	users, err := srv.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return entity.SanitizeAll(users), nil
}

func (srv *userService) hashPassword(ctx context.Context, password string, checkStrength bool) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domainerrors.ErrValidationFailed.WrapMessage("password must be at most 72 bytes")
	}

	if checkStrength {
		if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
			return "", err
		}
	}

	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", err
	}

	return passwordHash, nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
