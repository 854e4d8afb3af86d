package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/laiwenqiang/vps-stock-monitor/pkg/extract"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	plans, err := loadFixture(filepath.Join("testdata", "plans.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	srv := httptest.NewServer(newMux(testLogger(), newCatalog(plans)))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec,noctx // test server URL
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestLoadFixture(t *testing.T) {
	plans, err := loadFixture(filepath.Join("testdata", "plans.json"))
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	if len(plans) == 0 {
		t.Fatal("expected plans in fixture")
	}
	seen := map[int]bool{}
	for _, p := range plans {
		if seen[p.PID] {
			t.Errorf("duplicate pid %d", p.PID)
		}
		seen[p.PID] = true
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

// Every page must parse to the same availability with the strategy it is
// meant to exercise.
func TestPagesParse(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		path    string
		source  domain.SourceType
		inStock bool
	}{
		{name: "api out of stock", path: "/api/stock?pid=1", source: domain.SourceAPI},
		{name: "api in stock", path: "/api/stock?pid=2", source: domain.SourceAPI, inStock: true},
		{name: "embedded out of stock", path: "/embedded?pid=1", source: domain.SourceJSON},
		{name: "embedded in stock", path: "/embedded?pid=4", source: domain.SourceJSON, inStock: true},
		{name: "cart out of stock", path: "/cart.php?pid=3", source: domain.SourceHTML},
		{name: "cart in stock", path: "/cart.php?pid=2", source: domain.SourceHTML, inStock: true},
		{name: "cart auto", path: "/cart.php?pid=2", source: domain.SourceAuto, inStock: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, srv.URL+tt.path)
			if code != http.StatusOK {
				t.Fatalf("status=%d, want 200", code)
			}

			res, err := extract.Parse(body, tt.source)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if res.Status.InStock != tt.inStock {
				t.Errorf("in_stock=%v, want %v", res.Status.InStock, tt.inStock)
			}
		})
	}
}

func TestCartPrice(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/cart.php?pid=2")
	if !strings.Contains(body, "$88.90 USD") {
		t.Errorf("cart page missing price: %s", body)
	}
}

func TestLookupErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/stock?pid=99", want: http.StatusNotFound},
		{path: "/api/stock?pid=abc", want: http.StatusBadRequest},
		{path: "/cart.php", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		if code, _ := get(t, srv.URL+tt.path); code != tt.want {
			t.Errorf("%s: status=%d, want %d", tt.path, code, tt.want)
		}
	}
}

func TestSetStock(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/admin/stock?pid=1&qty=5", "", http.NoBody) //nolint:gosec,noctx // test server URL
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want 200", resp.StatusCode)
	}

	_, body := get(t, srv.URL+"/api/stock?pid=1")
	var got map[string]any
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if got["available"] != true || got["stock"] != float64(5) {
		t.Errorf("after restock got %v", got)
	}
}

func TestSetStock_Invalid(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		query string
		want  int
	}{
		{query: "pid=1&qty=-1", want: http.StatusBadRequest},
		{query: "pid=1", want: http.StatusBadRequest},
		{query: "pid=x&qty=1", want: http.StatusBadRequest},
		{query: "pid=99&qty=1", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := http.Post(srv.URL+"/admin/stock?"+tt.query, "", http.NoBody) //nolint:gosec,noctx // test server URL
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("%s: status=%d, want %d", tt.query, resp.StatusCode, tt.want)
		}
	}
}
