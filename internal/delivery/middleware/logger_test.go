package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"users/config"
	deliverycontext "users/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLogged(t *testing.T, debug bool, handler echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/passwordCheck", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetAPIUser(c, "them")

	require.NoError(t, NewLoggerMiddleware(logger, cfg).Handle(handler)(c))

	return buf.String()
}

func TestLoggerMiddleware_QuietOnSuccess(t *testing.T) {
	out := serveLogged(t, false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Empty(t, out)
}

func TestLoggerMiddleware_LogsServerErrors(t *testing.T) {
	out := serveLogged(t, false, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "store down")
	})

	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "status=503")
	assert.Contains(t, out, "api_user=them")
}

func TestLoggerMiddleware_DebugLogsEverything(t *testing.T) {
	out := serveLogged(t, true, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "uri=/passwordCheck")
}
