package impl

import (
	"context"
	"strings"
	"testing"

	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/repository"
	"users/internal/errors"
	mockRepo "users/internal/mocks/repository"
	mockSvc "users/internal/mocks/service"
	"users/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	store   *mockRepo.MockUserStore
	hasher  *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	store := mockRepo.NewMockUserStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		Store:  store,
		Hasher: hasher,
		Logger: newDiscardLogger(),
	})

	return userServiceFixtures{
		service: service,
		store:   store,
		hasher:  hasher,
	}
}

func TestUserService_Create_ConnectionFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("w0rd").Return(nil)
	fx.hasher.EXPECT().Hash("w0rd").Return("hashed", nil)
	fx.store.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrConnectionFailure.Wrap(errors.New("dial tcp: refused")))

	_, err := fx.service.Create(ctx, exampleCreateInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionFailure))
}

func TestUserService_Create_StoresHashNotPlaintext(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("w0rd").Return(nil)
	fx.hasher.EXPECT().Hash("w0rd").Return("hashed", nil)
	fx.store.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.DefaultProvider, user.Provider)
			assert.NotNil(t, user.Emails)
		}).
		Return(nil)

	_, err := fx.service.Create(ctx, exampleCreateInput())
	require.NoError(t, err)
}

func TestUserService_Create_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("w0rd").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Create(context.Background(), exampleCreateInput())
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Create_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)

	input := exampleCreateInput()
	// 40 runes pass the length tag but exceed bcrypt's 72 bytes.
	input.Password = strings.Repeat("é", 40)

	_, err := fx.service.Create(context.Background(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Find_ConnectionFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUsername(ctx, "me").Return(nil, domainerrors.ErrConnectionFailure)

	user, err := fx.service.Find(ctx, "me")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionFailure))
}

func TestUserService_PasswordCheck_StoreFailureLooksLikeMismatch(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUsername(ctx, "me").Return(nil, domainerrors.ErrConnectionFailure)

	result := fx.service.UserPasswordCheck(ctx, "me", "w0rd")
	assert.Equal(t, &entity.PasswordCheck{Check: false, Username: "me", Message: invalidCredentialsMessage}, result)
}

func TestUserService_PasswordCheck_UnknownUserUsesDecoy(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound).Times(2)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("decoy", nil).Once()
	fx.hasher.EXPECT().Check("w0rd", "decoy").Return(false).Times(2)

	for range 2 {
		result := fx.service.UserPasswordCheck(ctx, "ghost", "w0rd")
		assert.False(t, result.Check)
		assert.Equal(t, invalidCredentialsMessage, result.Message)
	}
}

func TestUserService_FindOrCreate_LosesRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	winner := &entity.User{
		Username:   "oauth-1",
		Provider:   "github",
		FamilyName: "Winner",
		GivenName:  "First",
	}

	fx.store.EXPECT().FindByUsername(ctx, "oauth-1").Return(nil, repository.ErrUserNotFound).Once()
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)
	fx.store.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrDuplicateIdentity.WrapMessage("username already exists"))
	fx.store.EXPECT().FindByUsername(ctx, "oauth-1").Return(winner, nil).Once()

	user, err := fx.service.FindOrCreate(ctx, &usecase.ProfileInput{ID: "oauth-1", FamilyName: "Loser", GivenName: "Second"})

	require.NoError(t, err)
	assert.Equal(t, "Winner", user.FamilyName)
	assert.Equal(t, "github", user.Provider)
}

func TestUserService_FindOrCreate_ConnectionFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUsername(ctx, "oauth-1").Return(nil, domainerrors.ErrConnectionFailure)

	_, err := fx.service.FindOrCreate(ctx, &usecase.ProfileInput{ID: "oauth-1", FamilyName: "A", GivenName: "B"})
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionFailure))
}

func TestUserService_Update_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	password := "new-secret"
	fx.hasher.EXPECT().ValidatePasswordStrength(password).Return(nil)
	fx.hasher.EXPECT().Hash(password).Return("", domainerrors.ErrPasswordHashFailed)

	_, err := fx.service.Update(context.Background(), "me", &usecase.UpdateUserInput{Password: &password})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_ListUsers_ConnectionFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.store.EXPECT().List(ctx).Return(nil, domainerrors.ErrConnectionFailure)

	users, err := fx.service.ListUsers(ctx)
	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionFailure))
}
