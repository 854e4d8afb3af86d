package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/laiwenqiang/vps-stock-monitor/internal/engine"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// Checker runs stock checks on demand.
type Checker interface {
	RunChecks(ctx context.Context) (*engine.CheckSummary, error)
	CheckAndRecord(ctx context.Context, t *domain.MonitorTarget) engine.TargetResult
}

// CheckHandler handles manual check trigger requests.
type CheckHandler struct {
	store   store.Store
	checker Checker
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(s store.Store, c Checker) *CheckHandler {
	return &CheckHandler{store: s, checker: c}
}

// RunChecksOutput is the response body for a full check run.
type RunChecksOutput struct {
	Body *engine.CheckSummary
}

// CheckTargetOutput is the response body for a single-target check.
type CheckTargetOutput struct {
	Body engine.TargetResult
}

// RunChecks checks every enabled target now.
func (h *CheckHandler) RunChecks(ctx context.Context, _ *struct{}) (*RunChecksOutput, error) {
	summary, err := h.checker.RunChecks(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("check run failed: " + err.Error())
	}
	return &RunChecksOutput{Body: summary}, nil
}

// CheckTarget checks one target now, whether or not it is enabled. A
// failed check is reported in the body, not as an HTTP error.
func (h *CheckHandler) CheckTarget(ctx context.Context, input *TargetIDInput) (*CheckTargetOutput, error) {
	t, err := h.store.GetTarget(ctx, input.ID)
	if err != nil {
		return nil, storeError("target", err)
	}

	return &CheckTargetOutput{Body: h.checker.CheckAndRecord(ctx, t)}, nil
}

// RegisterCheckRoutes registers manual check endpoints with the Huma API.
func RegisterCheckRoutes(api huma.API, h *CheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-checks",
		Method:      http.MethodPost,
		Path:        "/api/v1/check",
		Summary:     "Check all targets",
		Description: "Checks every enabled target, records state and history, and sends notifications.",
		Tags:        []string{"check"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.RunChecks)

	huma.Register(api, huma.Operation{
		OperationID: "check-target",
		Method:      http.MethodPost,
		Path:        "/api/v1/targets/{id}/check",
		Summary:     "Check one target",
		Tags:        []string{"check"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.CheckTarget)
}
