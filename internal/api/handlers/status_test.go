package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	storeMocks "github.com/laiwenqiang/vps-stock-monitor/internal/store/mocks"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func TestStatusHandler_List(t *testing.T) {
	t.Parallel()

	checked := time.Date(2026, 3, 1, 4, 5, 6, 0, time.UTC)

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "joins targets with their states",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListTargets(mock.Anything, false).Return([]domain.MonitorTarget{
					{ID: "t1", Name: "checked"},
					{ID: "t2", Name: "never checked"},
				}, nil).Once()
				m.EXPECT().ListStates(mock.Anything).Return([]domain.MonitorState{
					{
						TargetID:      "t1",
						LastStatus:    &domain.StockStatus{InStock: true, Qty: ptr(2.0)},
						LastCheckedAt: &checked,
						ErrorCount:    1,
					},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"in_stock":true`, `"error_count":1`, `"never checked"`},
		},
		{
			name: "no targets",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListTargets(mock.Anything, false).Return(nil, nil).Once()
				m.EXPECT().ListStates(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`[]`},
		},
		{
			name: "state store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListTargets(mock.Anything, false).Return(nil, nil).Once()
				m.EXPECT().ListStates(mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`listing states`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterStatusRoutes(api, handlers.NewStatusHandler(ms))

			resp := api.Get("/api/v1/status")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestStatusHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
		notInBody  string
	}{
		{
			name: "with state",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(&domain.MonitorTarget{ID: "t1"}, nil).Once()
				m.EXPECT().GetState(mock.Anything, "t1").Return(&domain.MonitorState{
					TargetID:  "t1",
					LastError: "upstream returned 503",
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `upstream returned 503`,
		},
		{
			name: "never checked has no state",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(&domain.MonitorTarget{ID: "t1"}, nil).Once()
				m.EXPECT().GetState(mock.Anything, "t1").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"target"`,
			notInBody:  `"state"`,
		},
		{
			name: "unknown target",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(nil, notFound("t1")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `target not found`,
		},
		{
			name: "state store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetTarget(mock.Anything, "t1").Return(&domain.MonitorTarget{ID: "t1"}, nil).Once()
				m.EXPECT().GetState(mock.Anything, "t1").Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `loading state`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterStatusRoutes(api, handlers.NewStatusHandler(ms))

			resp := api.Get("/api/v1/status/t1")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			if tt.notInBody != "" {
				assert.NotContains(t, resp.Body.String(), tt.notInBody)
			}
		})
	}
}
