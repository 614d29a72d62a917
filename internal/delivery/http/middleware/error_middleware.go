package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"users/config"
	deliverycontext "users/internal/delivery/context"
	"users/internal/delivery/http/response"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/service"
	"users/internal/errors"

	"github.com/labstack/echo/v4"
)

// alertTimeout bounds how long a failing request waits on the alert topic.
const alertTimeout = 5 * time.Second

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger      *slog.Logger
	alerts      service.AlertPublisher
	serviceName string
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, alerts service.AlertPublisher, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:      logger,
		alerts:      alerts,
		serviceName: cfg.Env.ServiceName,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), err.Error())
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.reportFault(c, err)
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)
		if httpErr.Code >= http.StatusInternalServerError {
			m.reportFault(c, err)
		}

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
	m.reportFault(c, err)
}

// reportFault publishes the failure after the response has been written.
func (m *ErrorMiddleware) reportFault(c echo.Context, err error) {
	req := c.Request()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), alertTimeout)
	defer cancel()

	event := &service.FaultEvent{
		RequestID:  deliverycontext.GetRequestID(c),
		Service:    m.serviceName,
		Method:     req.Method,
		Path:       req.URL.Path,
		Error:      fmt.Sprintf("%+v", err),
		OccurredAt: time.Now().UTC(),
	}

	if pubErr := m.alerts.PublishFault(ctx, event); pubErr != nil {
		m.logger.Warn("Failed to publish fault alert",
			slog.Any("error", pubErr),
			slog.String("request_id", event.RequestID),
		)
	}
}
