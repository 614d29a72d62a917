package document

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"users/config"
	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/repository"
	"users/internal/errors"
	"users/internal/infra/connmgr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMapping_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	user := &entity.User{
		Username:     "ada",
		PasswordHash: "hash",
		Provider:     "local",
		FamilyName:   "Lovelace",
		GivenName:    "Ada",
	}

	doc := fromUserDomain(user, ts)
	assert.Equal(t, []string{}, doc.Emails)
	assert.Equal(t, ts, doc.CreatedAt)

	back := toUserDomain(doc)
	assert.Equal(t, "ada", back.Username)
	assert.Equal(t, "hash", back.PasswordHash)
	assert.Equal(t, []string{}, back.Photos)
	assert.Nil(t, toUserDomain(nil))
}

func TestSetFields(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	given := "Grace"
	emails := []string{"grace@example.com"}

	set := setFields(&entity.UserPatch{GivenName: &given, Emails: &emails}, ts)

	assert.Equal(t, bson.M{
		fieldUpdatedAt: ts,
		fieldGivenName: "Grace",
		fieldEmails:    []string{"grace@example.com"},
	}, set)

	assert.Equal(t, bson.M{fieldUpdatedAt: ts}, setFields(nil, ts))
}

func TestIsDisconnect(t *testing.T) {
	assert.True(t, isDisconnect(mongo.ErrClientDisconnected))
	assert.False(t, isDisconnect(mongo.ErrNoDocuments))
	assert.False(t, isDisconnect(errors.New("bad value")))
	assert.False(t, isDisconnect(context.DeadlineExceeded))
	assert.False(t, isDisconnect(errors.Wrap(context.Canceled, "find")))
}

func TestUserStore_UnreachableServer(t *testing.T) {
	cfg := &config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "users", Collection: "users"}
	conn := NewConnector(cfg, discardLogger(), 200*time.Millisecond)
	store := NewUserStore(conn)

	assert.Equal(t, connmgr.Disconnected, conn.State())

	_, err := store.FindByUsername(context.Background(), "ada")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionFailure))
	assert.Equal(t, connmgr.Disconnected, conn.State())
}

// newIntegrationStore connects to the server named by MONGO_TEST_URI.
func newIntegrationStore(t *testing.T) repository.UserStore {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	cfg := &config.MongoConfig{URI: uri, Database: "users_test", Collection: "users_" + uuid.NewString()}
	conn := NewConnector(cfg, discardLogger(), 5*time.Second)
	t.Cleanup(func() {
		ctx := context.Background()
		if _, coll, err := conn.Collection(ctx); err == nil {
			_ = coll.Drop(ctx)
		}
		_ = conn.Close(ctx)
	})

	return NewUserStore(conn)
}

func TestUserStore_Integration(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	user := &entity.User{
		Username:     "ada",
		PasswordHash: "hash",
		Provider:     "local",
		FamilyName:   "Lovelace",
		GivenName:    "Ada",
		Emails:       []string{"ada@example.com"},
	}
	require.NoError(t, store.Create(ctx, user))

	err := store.Create(ctx, user)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))

	found, err := store.FindByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com"}, found.Emails)

	middle := "King"
	updated, err := store.Update(ctx, "ada", &entity.UserPatch{MiddleName: &middle})
	require.NoError(t, err)
	assert.Equal(t, "King", updated.MiddleName)
	assert.Equal(t, "Lovelace", updated.FamilyName)

	_, err = store.Update(ctx, "ghost", &entity.UserPatch{MiddleName: &middle})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	users, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	existed, err := store.Delete(ctx, "ada")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = store.Delete(ctx, "ada")
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = store.FindByUsername(ctx, "ada")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
