// Package document stores users in a MongoDB collection.
package document

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"users/config"
	"users/internal/errors"
	"users/internal/infra/connmgr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

const usernameIndexName = "username_unique"

// Connector lazily connects to MongoDB and reconnects after a network error.
type Connector struct {
	cfg         *config.MongoConfig
	dialTimeout time.Duration
	logger      *slog.Logger
	manager     *connmgr.Manager[*mongo.Client]
}

// NewConnector prepares a connector. Nothing is dialed until the first operation.
func NewConnector(cfg *config.MongoConfig, logger *slog.Logger, dialTimeout time.Duration) *Connector {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Connector{
		cfg:         cfg,
		dialTimeout: dialTimeout,
		logger:      logger,
	}
	c.manager = connmgr.New(c.dial, c.close, connmgr.Options{
		Name:         "document",
		DialTimeout:  dialTimeout,
		IsDisconnect: isDisconnect,
		Logger:       logger,
	})

	return c
}

// Collection returns the users collection on the live client.
func (c *Connector) Collection(ctx context.Context) (*mongo.Client, *mongo.Collection, error) {
	client, err := c.manager.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	return client, client.Database(c.cfg.Database).Collection(c.cfg.Collection), nil
}

// Observe forwards an operation error to the connection manager.
func (c *Connector) Observe(client *mongo.Client, err error) error {
	return c.manager.Observe(client, err)
}

// State exposes the connection state for health reporting.
func (c *Connector) State() connmgr.State {
	return c.manager.State()
}

// Close disconnects the client.
func (c *Connector) Close(ctx context.Context) error {
	return c.manager.Close(ctx)
}

func (c *Connector) dial(ctx context.Context) (*mongo.Client, error) {
	// Set once the dial succeeds; heartbeats during the dial itself are ignored.
	var dialed atomic.Pointer[mongo.Client]

	opts := options.Client().
		ApplyURI(c.cfg.URI).
		SetConnectTimeout(c.dialTimeout).
		SetServerSelectionTimeout(c.dialTimeout).
		SetServerMonitor(&event.ServerMonitor{
			ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
				c.logger.Warn("MongoDB heartbeat failed",
					slog.String("connectionId", e.ConnectionID),
					slog.Any("error", e.Failure),
				)
				if client := dialed.Load(); client != nil {
					c.manager.Invalidate(client)
				}
			},
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	coll := client.Database(c.cfg.Database).Collection(c.cfg.Collection)
	if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(usernameIndexName),
	}); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ensure username index")
	}

	dialed.Store(client)

	return client, nil
}

func (c *Connector) close(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}

// isDisconnect reports errors after which the client should be rebuilt.
// Timeouts and caller cancellations leave the client alone; the driver's own
// pool recovers from them.
func isDisconnect(err error) bool {
	if connmgr.IsCallerCancellation(err) || mongo.IsTimeout(err) {
		return false
	}
	if mongo.IsNetworkError(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}

	var selectionErr topology.ServerSelectionError

	return errors.As(err, &selectionErr)
}
