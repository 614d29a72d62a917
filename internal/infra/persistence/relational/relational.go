// Package relational stores users in a SQL database through GORM. The dialect
// (sqlite, postgres or mysql) comes from the connection descriptor.
package relational

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"users/config"
	"users/internal/errors"
	"users/internal/infra/connmgr"
	"users/internal/infra/persistence/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	// Registers the pure-Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	sqliteDriverName = "sqlite"
)

// Connector lazily opens the database described by a Descriptor and reopens it
// after the link is lost.
type Connector struct {
	desc    *config.Descriptor
	logger  *slog.Logger
	debug   bool
	manager *connmgr.Manager[*gorm.DB]

	monitors sync.Map // *gorm.DB -> context.CancelFunc
}

// NewConnector prepares a connector. Nothing is dialed until the first operation.
func NewConnector(desc *config.Descriptor, logger *slog.Logger, debug bool, dialTimeout time.Duration) *Connector {
	c := &Connector{
		desc:   desc,
		logger: logger,
		debug:  debug,
	}
	c.manager = connmgr.New(c.dial, c.close, connmgr.Options{
		Name:         "relational/" + desc.Params.Dialect,
		DialTimeout:  dialTimeout,
		IsDisconnect: isDisconnect,
		Logger:       logger,
	})

	return c
}

// DB returns the live handle, connecting first if needed.
func (c *Connector) DB(ctx context.Context) (*gorm.DB, error) {
	return c.manager.Get(ctx)
}

// Observe forwards an operation error to the connection manager.
func (c *Connector) Observe(db *gorm.DB, err error) error {
	return c.manager.Observe(db, err)
}

// State exposes the connection state for health reporting.
func (c *Connector) State() connmgr.State {
	return c.manager.State()
}

// Close releases the pool.
func (c *Connector) Close(ctx context.Context) error {
	return c.manager.Close(ctx)
}

func (c *Connector) dial(ctx context.Context) (*gorm.DB, error) {
	dialector, err := newDialector(c.desc)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Every write is a single statement; Update opens its own transaction.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		DisableAutomaticPing:   true,
		Logger:                 newGormSlogLogger(c.logger, c.desc.Params.Dialect, c.debug),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", c.desc.Params.Dialect)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	if c.desc.Params.Dialect == config.DialectSQLite {
		// One connection keeps in-memory databases alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrapf(err, "ping %s database", c.desc.Params.Dialect)
	}

	if replicas := replicaDialectors(c.desc); len(replicas) > 0 {
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			_ = sqlDB.Close()

			return nil, errors.Wrap(err, "register read replicas")
		}
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "migrate users table")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	c.monitors.Store(db, cancelMonitor)
	go monitorDBPool(monitorCtx, c.logger, c.desc.Params.Dialect, sqlDB, dbPoolMonitorInterval)

	return db, nil
}

func (c *Connector) close(_ context.Context, db *gorm.DB) error {
	if cancel, ok := c.monitors.LoadAndDelete(db); ok {
		cancel.(context.CancelFunc)()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB.Close()
}

func newDialector(desc *config.Descriptor) (gorm.Dialector, error) {
	switch desc.Params.Dialect {
	case config.DialectSQLite:
		return sqlite.Dialector{DriverName: sqliteDriverName, DSN: desc.Params.Storage}, nil
	case config.DialectPostgres:
		return postgres.Open(postgresDSN(desc.Params.Host, desc.Params.Port, desc.Username, desc.Password, desc.DBName, desc.Params.SSLMode)), nil
	case config.DialectMySQL:
		return mysql.Open(mysqlDSN(desc.Params.Host, desc.Params.Port, desc.Username, desc.Password, desc.DBName)), nil
	default:
		return nil, errors.Errorf("unsupported dialect %q", desc.Params.Dialect)
	}
}

// replicaDialectors builds read replicas. SQLite has none.
func replicaDialectors(desc *config.Descriptor) []gorm.Dialector {
	if desc.Params.Dialect == config.DialectSQLite {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(desc.Params.Replicas))
	for _, r := range desc.Params.Replicas {
		user, password, port := r.Username, r.Password, r.Port
		if user == "" {
			user, password = desc.Username, desc.Password
		}
		if port == 0 {
			port = desc.Params.Port
		}

		switch desc.Params.Dialect {
		case config.DialectPostgres:
			replicas = append(replicas, postgres.Open(postgresDSN(r.Host, port, user, password, desc.DBName, desc.Params.SSLMode)))
		case config.DialectMySQL:
			replicas = append(replicas, mysql.Open(mysqlDSN(r.Host, port, user, password, desc.DBName)))
		}
	}

	return replicas
}

func postgresDSN(host string, port int, user, password, dbName, sslMode string) string {
	if port == 0 {
		port = 5432
	}
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

func mysqlDSN(host string, port int, user, password, dbName string) string {
	if port == 0 {
		port = 3306
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=10s",
		user, password, host, port, dbName)
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, dialect string, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.String("dialect", dialect),
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
