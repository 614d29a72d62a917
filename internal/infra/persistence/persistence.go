// Package persistence selects the user store backend named in the configuration.
package persistence

import (
	"context"
	"log/slog"

	"users/config"
	"users/internal/domain/lifecycle"
	"users/internal/domain/repository"
	"users/internal/errors"
	"users/internal/infra/connmgr"
	"users/internal/infra/persistence/document"
	"users/internal/infra/persistence/relational"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result carries the store and its connection status.
type Result struct {
	fx.Out

	Store  repository.UserStore
	Status *Status
}

type connector interface {
	State() connmgr.State
	Close(ctx context.Context) error
}

// Status reports which backend is active and whether it is connected.
type Status struct {
	backend string
	conn    connector
}

// Backend returns the configured backend name.
func (s *Status) Backend() string {
	return s.backend
}

// State returns the connection state as text.
func (s *Status) State() string {
	return s.conn.State().String()
}

// NewUserStore builds the store for config store.backend. The backend is chosen
// once here and never changes for the life of the process. No connection is
// made until the first operation.
func NewUserStore(params Params) (Result, error) {
	cfg := params.Config

	var (
		store repository.UserStore
		conn  connector
	)

	switch cfg.Store.Backend {
	case config.BackendDocument:
		c := document.NewConnector(cfg.Mongo, params.Logger, cfg.Store.DialTimeout)
		store, conn = document.NewUserStore(c), c
	case config.BackendRelational:
		desc, err := config.LoadDescriptor(cfg.Relational.DescriptorPath)
		if err != nil {
			return Result{}, errors.Wrap(err, "failed to load relational descriptor")
		}

		c := relational.NewConnector(desc, params.Logger, cfg.Env.Debug, cfg.Store.DialTimeout)
		store, conn = relational.NewUserStore(c), c
	default:
		return Result{}, errors.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	params.Logger.Info("User store selected", slog.String("backend", cfg.Store.Backend))

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return conn.Close(ctx)
		},
	})

	return Result{
		Store:  store,
		Status: &Status{backend: cfg.Store.Backend, conn: conn},
	}, nil
}
