package handler

import (
	"net/http"

	"users/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// StoreStatus reports which backend serves the user store and its connection state.
type StoreStatus interface {
	Backend() string
	State() string
}

// HealthHandler answers liveness probes. It never dials the store.
type HealthHandler struct {
	status StoreStatus
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(status StoreStatus) *HealthHandler {
	return &HealthHandler{status: status}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": h.status.Backend(),
		"store":   h.status.State(),
	}, "Service is healthy")
}
