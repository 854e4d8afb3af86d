package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// HistoryHandler serves check and notification history.
type HistoryHandler struct {
	store store.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// HistoryInput filters a history listing.
type HistoryInput struct {
	TargetID string `query:"target_id" doc:"Only entries for this target"`
	Since    string `query:"since" example:"2026-03-01T00:00:00Z" doc:"RFC 3339 lower bound (inclusive)"`
	Limit    int    `query:"limit" minimum:"0" maximum:"500" default:"50" doc:"Maximum number of entries"`
}

func (in *HistoryInput) query() (store.HistoryQuery, error) {
	q := store.HistoryQuery{TargetID: in.TargetID, Limit: in.Limit}
	if in.Since != "" {
		since, err := time.Parse(time.RFC3339, in.Since)
		if err != nil {
			return q, huma.Error400BadRequest("invalid since: must be RFC 3339")
		}
		q.Since = &since
	}
	return q, nil
}

// CheckHistoryOutput is the response body for check history.
type CheckHistoryOutput struct {
	Body []domain.CheckRecord
}

// NotifyHistoryOutput is the response body for notification history.
type NotifyHistoryOutput struct {
	Body []domain.NotifyRecord
}

// Checks returns check history, newest first.
func (h *HistoryHandler) Checks(ctx context.Context, input *HistoryInput) (*CheckHistoryOutput, error) {
	q, err := input.query()
	if err != nil {
		return nil, err
	}

	records, err := h.store.ListCheckHistory(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing check history: " + err.Error())
	}

	if records == nil {
		records = []domain.CheckRecord{}
	}

	return &CheckHistoryOutput{Body: records}, nil
}

// Notifications returns notification history, newest first.
func (h *HistoryHandler) Notifications(ctx context.Context, input *HistoryInput) (*NotifyHistoryOutput, error) {
	q, err := input.query()
	if err != nil {
		return nil, err
	}

	records, err := h.store.ListNotifyHistory(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing notification history: " + err.Error())
	}

	if records == nil {
		records = []domain.NotifyRecord{}
	}

	return &NotifyHistoryOutput{Body: records}, nil
}

// RegisterHistoryRoutes registers history endpoints with the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-check-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/checks",
		Summary:     "List check history",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Checks)

	huma.Register(api, huma.Operation{
		OperationID: "list-notify-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/notifications",
		Summary:     "List notification history",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Notifications)
}
