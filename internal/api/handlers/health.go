// Package handlers implements HTTP handlers for the vps-stock-monitor API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
)

// HealthHandler provides service info, health and readiness endpoints.
type HealthHandler struct {
	store   store.Store
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store, version string) *HealthHandler {
	return &HealthHandler{store: s, version: version}
}

// ServiceInfo is the body of the root endpoint.
type ServiceInfo struct {
	Service string `json:"service" example:"vps-stock-monitor"`
	Version string `json:"version" example:"v0.1.0"`
	Status  string `json:"status" example:"running"`
}

// Root returns service name and version.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfo{
		Service: "vps-stock-monitor",
		Version: h.version,
		Status:  "running",
	})
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}

// RegisterHealthRoutes registers the unauthenticated probe endpoints.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/", h.Root)
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
