// Package main implements a mock VPS storefront for local development.
// It serves the same plan through a JSON stock API, a page with embedded
// JSON state, and a plain cart page, so every parse strategy of the monitor
// can be exercised without hitting a real provider. Stock levels can be
// changed at runtime to simulate restocks and sell-outs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

type plan struct {
	PID   int     `json:"pid"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

type fixtureFile struct {
	Plans []plan `json:"plans"`
}

// catalog holds the mutable stock of every plan.
type catalog struct {
	mu    sync.RWMutex
	plans map[int]*plan
}

func newCatalog(plans []plan) *catalog {
	c := &catalog{plans: make(map[int]*plan, len(plans))}
	for i := range plans {
		p := plans[i]
		c.plans[p.PID] = &p
	}
	return c
}

func (c *catalog) get(pid int) (plan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.plans[pid]
	if !ok {
		return plan{}, false
	}
	return *p, true
}

func (c *catalog) setQty(pid, qty int) (plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[pid]
	if !ok {
		return plan{}, false
	}
	p.Qty = qty
	return *p, true
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixture := flag.String("fixture", "tools/mock-server/testdata/plans.json", "path to plans fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	plans, err := loadFixture(*fixture)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixture, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "plans", len(plans))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock storefront", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, newCatalog(plans))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, c *catalog) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stock", stockAPIHandler(c))
	mux.HandleFunc("GET /embedded", embeddedHandler(c))
	mux.HandleFunc("GET /cart.php", cartHandler(c))
	mux.HandleFunc("POST /admin/stock", setStockHandler(logger, c))
	return mux
}

func loadFixture(path string) ([]plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return f.Plans, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// lookup resolves the pid query parameter, writing a 404 when the plan is
// unknown.
func lookup(w http.ResponseWriter, r *http.Request, c *catalog) (plan, bool) {
	pid, err := strconv.Atoi(r.URL.Query().Get("pid"))
	if err != nil {
		http.Error(w, "pid must be an integer", http.StatusBadRequest)
		return plan{}, false
	}
	p, ok := c.get(pid)
	if !ok {
		http.Error(w, "no such product", http.StatusNotFound)
		return plan{}, false
	}
	return p, true
}

func stockPayload(p plan) map[string]any {
	return map[string]any{
		"name":      p.Name,
		"available": p.Qty > 0,
		"stock":     p.Qty,
		"price":     p.Price,
	}
}

func stockAPIHandler(c *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := lookup(w, r, c)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(stockPayload(p))
	}
}

var embeddedPage = template.Must(template.New("embedded").Parse(`<!DOCTYPE html>
<html><head><title>{{.Name}}</title></head>
<body>
<div id="app"></div>
<script>window.__INITIAL_STATE__ = {{.State}};</script>
</body></html>
`))

func embeddedHandler(c *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := lookup(w, r, c)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		embeddedPage.Execute(w, map[string]any{"Name": p.Name, "State": stockPayload(p)})
	}
}

var cartPage = template.Must(template.New("cart").Parse(`<!DOCTYPE html>
<html><head><title>Shopping Cart</title></head>
<body>
<h2>{{.Name}}</h2>
{{if gt .Qty 0}}<p class="price">${{printf "%.2f" .Price}} USD Monthly</p>
<button type="submit" class="btn-success">Add to Cart</button>
{{else}}<div class="errorbox">Out of Stock</div>
{{end}}</body></html>
`))

func cartHandler(c *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := lookup(w, r, c)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		cartPage.Execute(w, p)
	}
}

func setStockHandler(logger *slog.Logger, c *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pid, err := strconv.Atoi(r.URL.Query().Get("pid"))
		if err != nil {
			http.Error(w, "pid must be an integer", http.StatusBadRequest)
			return
		}
		qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
		if err != nil || qty < 0 {
			http.Error(w, "qty must be a non-negative integer", http.StatusBadRequest)
			return
		}

		p, ok := c.setQty(pid, qty)
		if !ok {
			http.Error(w, "no such product", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(p)
		logger.Info("stock updated", "pid", pid, "name", p.Name, "qty", qty)
	}
}
