// Package connmgr provides a lazily established, memoized and self-healing
// connection handle shared by every operation of a store.
package connmgr

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainerrors "users/internal/domain/errors"
	"users/internal/errors"

	"golang.org/x/sync/singleflight"
)

// State is the position of a Manager in its connection state machine.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

const (
	dialKey            = "dial"
	defaultDialTimeout = 10 * time.Second
	closeTimeout       = 5 * time.Second
)

// DialFunc establishes a new backend handle.
type DialFunc[T any] func(ctx context.Context) (T, error)

// CloseFunc releases a handle that is no longer in use.
type CloseFunc[T any] func(ctx context.Context, handle T) error

// Options tunes a Manager.
type Options struct {
	// Name identifies the backend in log lines.
	Name string

	// DialTimeout bounds one connection attempt.
	DialTimeout time.Duration

	// IsDisconnect reports whether an operation error means the link is gone.
	IsDisconnect func(err error) bool

	Logger *slog.Logger
}

// Manager owns one backend handle. The first Get dials, concurrent callers share
// that single attempt, and Observe drops the handle after a link-loss error so the
// next Get dials again. The handle is only ever replaced as a whole.
type Manager[T comparable] struct {
	dial  DialFunc[T]
	close CloseFunc[T]
	opts  Options

	group singleflight.Group

	mu     sync.Mutex
	state  State
	handle T
}

// New builds a Manager in the Disconnected state. Nothing is dialed until the first Get.
func New[T comparable](dial DialFunc[T], closeFn CloseFunc[T], opts Options) *Manager[T] {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.IsDisconnect == nil {
		opts.IsDisconnect = func(error) bool { return false }
	}

	return &Manager[T]{
		dial:  dial,
		close: closeFn,
		opts:  opts,
	}
}

// State returns the current state.
func (m *Manager[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Get returns the cached handle, dialing first when there is none.
// A dial failure is returned as ErrConnectionFailure to this caller only.
func (m *Manager[T]) Get(ctx context.Context) (T, error) {
	m.mu.Lock()
	if m.state == Connected {
		handle := m.handle
		m.mu.Unlock()

		return handle, nil
	}
	m.mu.Unlock()

	result := m.group.DoChan(dialKey, func() (any, error) {
		return m.connect()
	})

	return awaitDial[T](ctx, result)
}

// awaitDial waits for the shared dial. A result that is already available wins
// over the caller's done context.
func awaitDial[T any](ctx context.Context, result <-chan singleflight.Result) (T, error) {
	var res singleflight.Result
	select {
	case res = <-result:
	case <-ctx.Done():
		select {
		case res = <-result:
		default:
			var zero T

			return zero, domainerrors.ErrConnectionFailure.Wrap(ctx.Err())
		}
	}

	if res.Err != nil {
		var zero T

		return zero, res.Err
	}

	return res.Val.(T), nil
}

// connect runs inside the singleflight group, so at most one dial is in flight.
func (m *Manager[T]) connect() (T, error) {
	m.mu.Lock()
	if m.state == Connected {
		handle := m.handle
		m.mu.Unlock()

		return handle, nil
	}
	m.state = Connecting
	m.mu.Unlock()

	// The attempt is shared, so no single caller's cancellation may abort it.
	ctx, cancel := context.WithTimeout(context.Background(), m.opts.DialTimeout)
	defer cancel()

	start := time.Now()
	handle, err := m.dial(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.state = Disconnected
		m.opts.Logger.Error("Store connection failed",
			slog.String("backend", m.opts.Name),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		var zero T

		return zero, domainerrors.ErrConnectionFailure.Wrap(err)
	}

	m.handle = handle
	m.state = Connected
	m.opts.Logger.Info("Store connected",
		slog.String("backend", m.opts.Name),
		slog.Duration("elapsed", time.Since(start)),
	)

	return handle, nil
}

// Observe inspects the error of an operation that ran on handle. A link-loss
// error invalidates the handle and comes back as ErrConnectionFailure; any other
// error is returned untouched.
func (m *Manager[T]) Observe(handle T, err error) error {
	if err == nil || IsCallerCancellation(err) || !m.opts.IsDisconnect(err) {
		return err
	}

	m.Invalidate(handle)

	return domainerrors.ErrConnectionFailure.Wrap(err)
}

// IsCallerCancellation reports whether err comes from the caller's own context
// ending. Such errors say nothing about the link.
func IsCallerCancellation(err error) bool {
	return errors.IsAny(err, context.DeadlineExceeded, context.Canceled)
}

// Invalidate drops handle if it is still the current one. A handle that was
// already replaced by a newer dial is left alone.
func (m *Manager[T]) Invalidate(handle T) {
	m.mu.Lock()
	if m.state != Connected || m.handle != handle {
		m.mu.Unlock()

		return
	}

	var zero T
	m.handle = zero
	m.state = Disconnected
	m.mu.Unlock()

	m.opts.Logger.Warn("Store disconnected, next operation will reconnect",
		slog.String("backend", m.opts.Name),
	)

	go m.release(handle)
}

// Close releases the current handle and returns the manager to Disconnected.
func (m *Manager[T]) Close(ctx context.Context) error {
	m.mu.Lock()
	connected := m.state == Connected
	handle := m.handle

	var zero T
	m.handle = zero
	m.state = Disconnected
	m.mu.Unlock()

	if !connected || m.close == nil {
		return nil
	}

	return errors.Wrapf(m.close(ctx, handle), "close %s connection", m.opts.Name)
}

func (m *Manager[T]) release(handle T) {
	if m.close == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := m.close(ctx, handle); err != nil {
		m.opts.Logger.Debug("Closing stale store handle failed",
			slog.String("backend", m.opts.Name),
			slog.Any("error", err),
		)
	}
}
