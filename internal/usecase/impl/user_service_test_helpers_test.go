package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"users/config"
	"users/internal/domain/repository"
	"users/internal/infra/auth"
	"users/internal/infra/persistence/relational"
	"users/internal/usecase"

	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSQLiteStore returns a relational store over a private in-memory database.
func newSQLiteStore(t *testing.T) repository.UserStore {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn := relational.NewConnector(&config.Descriptor{
		DBName: name,
		Params: config.DescriptorParams{
			Dialect: config.DialectSQLite,
			Storage: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		},
	}, newDiscardLogger(), false, 5*time.Second)
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	return relational.NewUserStore(conn)
}

// newStoreBackedService wires the service to a real store and a fast bcrypt hasher.
func newStoreBackedService(t *testing.T) usecase.UserUsecase {
	t.Helper()

	return NewUserService(UserServiceParams{
		Store:  newSQLiteStore(t),
		Hasher: auth.NewBcryptHasherWithCost(bcrypt.MinCost, 0),
		Logger: newDiscardLogger(),
	})
}

func exampleCreateInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Username:   "me",
		Password:   "w0rd",
		FamilyName: "Jittghiam",
		GivenName:  "Brimghieolaer",
		Emails:     []string{},
		Photos:     []string{},
	}
}
