// Package api assembles the Echo server, middleware and Huma operations.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/laiwenqiang/vps-stock-monitor/api/openapi"
	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	mw "github.com/laiwenqiang/vps-stock-monitor/internal/api/middleware"
	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
)

const (
	apiTitle = "VPS Stock Monitor API"

	// guardedPrefix is the path prefix that requires an API key.
	guardedPrefix = "/api/"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Store     store.Store
	Providers *provider.Registry
	Checker   handlers.Checker
	APIKey    string
	Version   string
	Logger    *slog.Logger
}

// NewRouter returns an Echo instance with every route registered. Probes,
// the service root, API docs and /metrics are public; everything under /api/
// requires the API key.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(d.Logger))
	e.Use(mw.RequestLog(d.Logger))
	e.Use(mw.Metrics())
	e.Use(mw.APIKey(d.APIKey, guardedPrefix))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(d.Store, d.Version))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig(apiTitle, d.Version)
	cfg.Info.Description = "Monitors VPS product pages for stock changes and sends notifications."
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"apiKey": {Type: "apiKey", In: "header", Name: mw.APIKeyHeader},
	}
	cfg.Security = []map[string][]string{{"apiKey": {}}}
	humaAPI := humaecho.New(e, cfg)
	openapi.RegisterRoutes(e, apiTitle, cfg.OpenAPIPath+".json")

	handlers.RegisterTargetRoutes(humaAPI, handlers.NewTargetHandler(d.Store, d.Providers))
	handlers.RegisterStatusRoutes(humaAPI, handlers.NewStatusHandler(d.Store))
	handlers.RegisterCheckRoutes(humaAPI, handlers.NewCheckHandler(d.Store, d.Checker))
	handlers.RegisterHistoryRoutes(humaAPI, handlers.NewHistoryHandler(d.Store))
	handlers.RegisterProviderRoutes(humaAPI, handlers.NewProviderHandler(d.Providers))

	return e
}

// Server wraps the router in an http.Server with the given timeouts.
func Server(addr string, h http.Handler, read, write time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       read,
		ReadHeaderTimeout: read,
		WriteTimeout:      write,
	}
}
