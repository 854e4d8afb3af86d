package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// StatusHandler reports the latest monitor state of targets.
type StatusHandler struct {
	store store.Store
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(s store.Store) *StatusHandler {
	return &StatusHandler{store: s}
}

// TargetStatus pairs a target with its monitor state. State is nil until
// the target has been checked once.
type TargetStatus struct {
	Target domain.MonitorTarget `json:"target"`
	State  *domain.MonitorState `json:"state,omitempty"`
}

// ListStatusOutput is the response body for all target states.
type ListStatusOutput struct {
	Body []TargetStatus
}

// StatusOutput is the response body for one target's state.
type StatusOutput struct {
	Body TargetStatus
}

// List returns every target together with its state.
func (h *StatusHandler) List(ctx context.Context, _ *struct{}) (*ListStatusOutput, error) {
	targets, err := h.store.ListTargets(ctx, false)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing targets: " + err.Error())
	}

	states, err := h.store.ListStates(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing states: " + err.Error())
	}

	byID := make(map[string]*domain.MonitorState, len(states))
	for i := range states {
		byID[states[i].TargetID] = &states[i]
	}

	out := make([]TargetStatus, 0, len(targets))
	for _, t := range targets {
		out = append(out, TargetStatus{Target: t, State: byID[t.ID]})
	}

	return &ListStatusOutput{Body: out}, nil
}

// Get returns one target together with its state.
func (h *StatusHandler) Get(ctx context.Context, input *TargetIDInput) (*StatusOutput, error) {
	t, err := h.store.GetTarget(ctx, input.ID)
	if err != nil {
		return nil, storeError("target", err)
	}

	state, err := h.store.GetState(ctx, input.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("loading state: " + err.Error())
	}

	return &StatusOutput{Body: TargetStatus{Target: *t, State: state}}, nil
}

// RegisterStatusRoutes registers status endpoints with the Huma API.
func RegisterStatusRoutes(api huma.API, h *StatusHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/status",
		Summary:     "List target status",
		Description: "Returns every target with its last status, error count and notification time.",
		Tags:        []string{"status"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/status/{id}",
		Summary:     "Get target status",
		Tags:        []string{"status"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)
}
