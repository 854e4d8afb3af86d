package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	storeMocks "github.com/laiwenqiang/vps-stock-monitor/internal/store/mocks"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

const dmitURL = "https://www.dmit.io/cart.php?pid=1"

func ptr[T any](v T) *T { return &v }

func newTargetAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()

	h := handlers.NewTargetHandler(ms, provider.NewRegistry(provider.NewDmitProvider()))

	_, api := humatest.New(t)
	handlers.RegisterTargetRoutes(api, h)
	return api
}

func notFound(id string) error {
	return fmt.Errorf("target %s: %w", id, store.ErrNotFound)
}

func TestTargetHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
		notInBody  string
	}{
		{
			name: "returns targets",
			path: "/api/v1/targets",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListTargets(mock.Anything, false).
					Return([]domain.MonitorTarget{
						{ID: "t1", Name: "DMIT LAX Pro", Provider: "dmit", URL: dmitURL, Enabled: true},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"DMIT LAX Pro"`,
		},
		{
			name: "enabled only filter",
			path: "/api/v1/targets?enabled=true",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListTargets(mock.Anything, true).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "disabled only filter",
			path: "/api/v1/targets?enabled=false",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListTargets(mock.Anything, false).
					Return([]domain.MonitorTarget{
						{ID: "on", Enabled: true},
						{ID: "off", Enabled: false},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"off"`,
			notInBody:  `"on"`,
		},
		{
			name:       "invalid enabled value",
			path:       "/api/v1/targets?enabled=maybe",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/targets",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListTargets(mock.Anything, false).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing targets`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newTargetAPI(t, ms)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			if tt.notInBody != "" {
				assert.NotContains(t, resp.Body.String(), tt.notInBody)
			}
		})
	}
}

func TestTargetHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "t1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetTarget(mock.Anything, "t1").
					Return(&domain.MonitorTarget{ID: "t1", Provider: "dmit", URL: dmitURL}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"t1"`,
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetTarget(mock.Anything, "missing").
					Return(nil, notFound("missing")).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `target not found`,
		},
		{
			name: "store error",
			id:   "t1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetTarget(mock.Anything, "t1").
					Return(nil, errors.New("connection reset")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `connection reset`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newTargetAPI(t, ms)

			resp := api.Get("/api/v1/targets/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestTargetHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid target defaults to enabled",
			body: map[string]any{
				"provider":    "dmit",
				"url":         dmitURL,
				"name":        "DMIT LAX Pro",
				"source_type": "html",
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateTarget(mock.Anything, mock.MatchedBy(func(t *domain.MonitorTarget) bool {
						return t.Name == "DMIT LAX Pro" && t.Enabled && t.SourceType == domain.SourceHTML
					})).
					Run(func(_ context.Context, t *domain.MonitorTarget) { t.ID = "new-id" }).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"new-id"`,
		},
		{
			name: "explicitly disabled with overrides",
			body: map[string]any{
				"provider":            "dmit",
				"url":                 dmitURL,
				"enabled":             false,
				"notify_on_restock":   false,
				"min_notify_interval": 15,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateTarget(mock.Anything, mock.MatchedBy(func(t *domain.MonitorTarget) bool {
						return !t.Enabled &&
							t.NotifyOnRestock != nil && !*t.NotifyOnRestock &&
							t.MinNotifyInterval != nil && *t.MinNotifyInterval == 15
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"enabled":false`,
		},
		{
			name:       "missing url returns 422",
			body:       map[string]any{"provider": "dmit"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property url to be present`,
		},
		{
			name:       "unknown source type returns 422",
			body:       map[string]any{"provider": "dmit", "url": dmitURL, "source_type": "xml"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "relative url returns 400",
			body:       map[string]any{"provider": "dmit", "url": "/cart.php"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid url`,
		},
		{
			name:       "unknown provider returns 400",
			body:       map[string]any{"provider": "linode", "url": dmitURL},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown provider`,
		},
		{
			name:       "unsupported url returns 400",
			body:       map[string]any{"provider": "dmit", "url": "https://example.com/vps"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `provider dmit does not support`,
		},
		{
			name: "store error",
			body: map[string]any{"provider": "dmit", "url": dmitURL},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateTarget(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `creating target`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newTargetAPI(t, ms)

			resp := api.Post("/api/v1/targets", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestTargetHandler_Update(t *testing.T) {
	t.Parallel()

	existing := func() *domain.MonitorTarget {
		return &domain.MonitorTarget{
			ID:       "t1",
			Provider: "dmit",
			URL:      dmitURL,
			Name:     "old",
			Enabled:  false,
		}
	}

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "replaces fields and keeps enabled flag",
			body: map[string]any{"provider": "dmit", "url": dmitURL, "name": "new", "region": "us-west"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(existing(), nil).Once()
				m.EXPECT().
					UpdateTarget(mock.Anything, mock.MatchedBy(func(t *domain.MonitorTarget) bool {
						return t.ID == "t1" && t.Name == "new" && t.Region == "us-west" && !t.Enabled
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"new"`,
		},
		{
			name: "not found",
			body: map[string]any{"provider": "dmit", "url": dmitURL},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(nil, notFound("t1")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `target not found`,
		},
		{
			name: "invalid url",
			body: map[string]any{"provider": "dmit", "url": "not a url"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(existing(), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid url`,
		},
		{
			name: "store error",
			body: map[string]any{"provider": "dmit", "url": dmitURL},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(existing(), nil).Once()
				m.EXPECT().UpdateTarget(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `db error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newTargetAPI(t, ms)

			resp := api.Put("/api/v1/targets/t1", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestTargetHandler_SetEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		enabled    bool
		storeErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "enable", enabled: true, wantStatus: http.StatusOK, wantBody: `"updated"`},
		{name: "disable", enabled: false, wantStatus: http.StatusOK, wantBody: `"updated"`},
		{name: "not found", enabled: true, storeErr: notFound("t1"), wantStatus: http.StatusNotFound, wantBody: `target not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().SetTargetEnabled(mock.Anything, "t1", tt.enabled).Return(tt.storeErr).Once()
			api := newTargetAPI(t, ms)

			resp := api.Put("/api/v1/targets/t1/enabled", map[string]any{"enabled": tt.enabled})
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestTargetHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		storeErr   error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", storeErr: notFound("t1"), wantStatus: http.StatusNotFound},
		{name: "store error", storeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().DeleteTarget(mock.Anything, "t1").Return(tt.storeErr).Once()
			api := newTargetAPI(t, ms)

			resp := api.Delete("/api/v1/targets/t1")
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
