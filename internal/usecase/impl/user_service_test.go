package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/errors"
	"users/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ExampleScenario(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	created, err := srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "me", created.Username)
	assert.Equal(t, "me", created.ID)
	assert.Equal(t, "Jittghiam", created.FamilyName)
	assert.Equal(t, entity.DefaultProvider, created.Provider)

	raw, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	ok := srv.UserPasswordCheck(ctx, "me", "w0rd")
	assert.Equal(t, &entity.PasswordCheck{Check: true, Username: "me"}, ok)

	bad := srv.UserPasswordCheck(ctx, "me", "bad")
	assert.False(t, bad.Check)
	assert.Equal(t, "me", bad.Username)
	assert.NotEmpty(t, bad.Message)
}

func TestUserService_CreateThenFind(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	input := exampleCreateInput()
	input.Username = "  me  "
	input.Emails = nil
	_, err := srv.Create(ctx, input)
	require.NoError(t, err)

	found, err := srv.Find(ctx, "me")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "me", found.Username)
	assert.Equal(t, []string{}, found.Emails)
	assert.Equal(t, []string{}, found.Photos)
}

func TestUserService_FindUnknownIsNotAnError(t *testing.T) {
	srv := newStoreBackedService(t)

	found, err := srv.Find(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserService_CreateDuplicate(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	_, err := srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)

	_, err = srv.Create(ctx, exampleCreateInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestUserService_CreateValidation(t *testing.T) {
	srv := newStoreBackedService(t)

	tests := []struct {
		name   string
		mutate func(*usecase.CreateUserInput)
	}{
		{name: "missing username", mutate: func(in *usecase.CreateUserInput) { in.Username = "   " }},
		{name: "missing password", mutate: func(in *usecase.CreateUserInput) { in.Password = "" }},
		{name: "missing family name", mutate: func(in *usecase.CreateUserInput) { in.FamilyName = "" }},
		{name: "missing given name", mutate: func(in *usecase.CreateUserInput) { in.GivenName = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := exampleCreateInput()
			tt.mutate(input)

			_, err := srv.Create(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserService_PasswordCheckUniformShape(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	_, err := srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)

	wrongPassword := srv.UserPasswordCheck(ctx, "me", "nope")
	unknownUser := srv.UserPasswordCheck(ctx, "ghost", "w0rd")

	assert.False(t, wrongPassword.Check)
	assert.False(t, unknownUser.Check)
	assert.Equal(t, wrongPassword.Message, unknownUser.Message)
	assert.Equal(t, "ghost", unknownUser.Username)

	a, err := json.Marshal(wrongPassword)
	require.NoError(t, err)
	b, err := json.Marshal(unknownUser)
	require.NoError(t, err)

	var shapeA, shapeB map[string]any
	require.NoError(t, json.Unmarshal(a, &shapeA))
	require.NoError(t, json.Unmarshal(b, &shapeB))
	assert.ElementsMatch(t, keys(shapeA), keys(shapeB))
}

func TestUserService_UpdatePassword(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	_, err := srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)

	newPassword := "n3w-w0rd"
	updated, err := srv.Update(ctx, "me", &usecase.UpdateUserInput{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "Jittghiam", updated.FamilyName)

	assert.True(t, srv.UserPasswordCheck(ctx, "me", newPassword).Check)
	assert.False(t, srv.UserPasswordCheck(ctx, "me", "w0rd").Check)
}

func TestUserService_UpdateFields(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	_, err := srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)

	middle := "  Q  "
	emails := []string{"me@example.com"}
	updated, err := srv.Update(ctx, "me", &usecase.UpdateUserInput{MiddleName: &middle, Emails: &emails})
	require.NoError(t, err)
	assert.Equal(t, "Q", updated.MiddleName)
	assert.Equal(t, emails, updated.Emails)
	assert.Equal(t, "Brimghieolaer", updated.GivenName)

	// The old password still works when none was supplied.
	assert.True(t, srv.UserPasswordCheck(ctx, "me", "w0rd").Check)

	empty := " "
	_, err = srv.Update(ctx, "me", &usecase.UpdateUserInput{FamilyName: &empty})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_UpdateUnknown(t *testing.T) {
	srv := newStoreBackedService(t)

	given := "Ada"
	_, err := srv.Update(context.Background(), "ghost", &usecase.UpdateUserInput{GivenName: &given})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DestroyThenFind(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	_, err := srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)

	existed, err := srv.Destroy(ctx, "me")
	require.NoError(t, err)
	assert.True(t, existed)

	found, err := srv.Find(ctx, "me")
	require.NoError(t, err)
	assert.Nil(t, found)

	existed, err = srv.Destroy(ctx, "me")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestUserService_FindOrCreateIsIdempotent(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	profile := func() *usecase.ProfileInput {
		return &usecase.ProfileInput{
			ID:         "oauth-42",
			Provider:   "twitter",
			FamilyName: "Hopper",
			GivenName:  "Grace",
			Emails:     []string{"grace@example.com"},
		}
	}

	first, err := srv.FindOrCreate(ctx, profile())
	require.NoError(t, err)
	assert.Equal(t, "oauth-42", first.ID)
	assert.Equal(t, "twitter", first.Provider)

	for range 3 {
		again, err := srv.FindOrCreate(ctx, &usecase.ProfileInput{ID: "oauth-42", FamilyName: "Changed", GivenName: "Changed"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	users, err := srv.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// No password was supplied, so no guessable one exists.
	assert.False(t, srv.UserPasswordCheck(ctx, "oauth-42", "").Check)
}

func TestUserService_FindOrCreateConcurrent(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	const callers = 8
	results := make([]*entity.SanitizedUser, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := srv.FindOrCreate(ctx, &usecase.ProfileInput{ID: "shared", FamilyName: "Doe", GivenName: "Jo"})
			assert.NoError(t, err)
			results[i] = user
		}()
	}
	wg.Wait()

	for _, user := range results {
		require.NotNil(t, user)
		assert.Equal(t, "shared", user.Username)
	}

	users, err := srv.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_ListUsers(t *testing.T) {
	srv := newStoreBackedService(t)
	ctx := context.Background()

	users, err := srv.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	_, err = srv.Create(ctx, exampleCreateInput())
	require.NoError(t, err)

	users, err = srv.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "me", users[0].ID)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
