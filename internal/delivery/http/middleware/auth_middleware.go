// Package middleware contains echo middleware specific to the user HTTP API.
package middleware

import (
	"crypto/subtle"
	"log/slog"

	"users/config"
	deliverycontext "users/internal/delivery/context"
	domainerrors "users/internal/domain/errors"
	"users/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// AuthMiddleware gates routes behind HTTP basic auth against the configured API keys.
type AuthMiddleware struct {
	keys   map[string][]byte
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	keys := make(map[string][]byte, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		if k.User == "" || k.Key == "" {
			continue
		}
		keys[k.User] = []byte(k.Key)
	}

	if len(keys) == 0 {
		logger.Warn("No API keys configured, every authenticated route will answer 401")
	}

	return &AuthMiddleware{keys: keys, logger: logger}
}

// Authenticate requires a valid user/key pair. A missing header and wrong
// credentials both answer 401 UNAUTHORIZED.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	basicAuth := echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Validator: m.validate,
		Realm:     "users",
	})(next)

	return func(c echo.Context) error {
		err := basicAuth(c)
		if errors.Is(err, echo.ErrUnauthorized) {
			return domainerrors.ErrUnauthorized.Wrap(err)
		}

		return err
	}
}

func (m *AuthMiddleware) validate(user, key string, c echo.Context) (bool, error) {
	want, ok := m.keys[user]
	if !ok || subtle.ConstantTimeCompare([]byte(key), want) != 1 {
		return false, nil
	}

	deliverycontext.SetAPIUser(c, user)

	return true, nil
}
