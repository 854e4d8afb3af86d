package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	"github.com/laiwenqiang/vps-stock-monitor/internal/engine"
	storeMocks "github.com/laiwenqiang/vps-stock-monitor/internal/store/mocks"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// fakeChecker implements handlers.Checker for testing.
type fakeChecker struct {
	summary *engine.CheckSummary
	err     error
	result  engine.TargetResult
	checked []string
}

func (f *fakeChecker) RunChecks(_ context.Context) (*engine.CheckSummary, error) {
	return f.summary, f.err
}

func (f *fakeChecker) CheckAndRecord(_ context.Context, t *domain.MonitorTarget) engine.TargetResult {
	f.checked = append(f.checked, t.ID)
	return f.result
}

func TestCheckHandler_RunChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checker    *fakeChecker
		wantStatus int
		wantBody   []string
	}{
		{
			name: "returns summary",
			checker: &fakeChecker{summary: &engine.CheckSummary{
				Success: 1,
				Failed:  1,
				Results: []engine.TargetResult{
					{TargetID: "t1", Success: true, Decision: engine.Decision{Notify: true, Reason: engine.ReasonRestocked}, Notified: true},
					{TargetID: "t2", Error: "request timed out"},
				},
			}},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"success":1`, `"failed":1`, `"Restocked"`, `request timed out`},
		},
		{
			name:       "run failure",
			checker:    &fakeChecker{err: errors.New("listing targets: db error")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`check run failed`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterCheckRoutes(api, handlers.NewCheckHandler(storeMocks.NewMockStore(t), tt.checker))

			resp := api.Post("/api/v1/check")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestCheckHandler_CheckTarget(t *testing.T) {
	t.Parallel()

	t.Run("checks the stored target", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetTarget(mock.Anything, "t1").
			Return(&domain.MonitorTarget{ID: "t1", Provider: "dmit", URL: dmitURL}, nil).Once()

		fc := &fakeChecker{result: engine.TargetResult{
			TargetID: "t1",
			Success:  true,
			Status:   &domain.StockStatus{InStock: false},
			Decision: engine.Decision{Reason: engine.ReasonFirstCheck},
		}}

		_, api := humatest.New(t)
		handlers.RegisterCheckRoutes(api, handlers.NewCheckHandler(ms, fc))

		resp := api.Post("/api/v1/targets/t1/check")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"in_stock":false`)
		assert.Equal(t, []string{"t1"}, fc.checked)
	})

	t.Run("failed check is still 200", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetTarget(mock.Anything, "t1").Return(&domain.MonitorTarget{ID: "t1"}, nil).Once()

		fc := &fakeChecker{result: engine.TargetResult{TargetID: "t1", Error: "upstream returned 403"}}

		_, api := humatest.New(t)
		handlers.RegisterCheckRoutes(api, handlers.NewCheckHandler(ms, fc))

		resp := api.Post("/api/v1/targets/t1/check")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"success":false`)
		assert.Contains(t, resp.Body.String(), `upstream returned 403`)
	})

	t.Run("unknown target", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetTarget(mock.Anything, "nope").Return(nil, notFound("nope")).Once()

		fc := &fakeChecker{}

		_, api := humatest.New(t)
		handlers.RegisterCheckRoutes(api, handlers.NewCheckHandler(ms, fc))

		resp := api.Post("/api/v1/targets/nope/check")
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Empty(t, fc.checked)
	})
}
