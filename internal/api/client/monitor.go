package client

import (
	"context"
	"strconv"
	"time"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	"github.com/laiwenqiang/vps-stock-monitor/internal/engine"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// HistoryParams filters a history listing. Zero values are omitted.
type HistoryParams struct {
	TargetID string
	Since    time.Time
	Limit    int
}

func (p *HistoryParams) query() map[string]string {
	q := map[string]string{}
	if p == nil {
		return q
	}
	if p.TargetID != "" {
		q["target_id"] = p.TargetID
	}
	if !p.Since.IsZero() {
		q["since"] = p.Since.UTC().Format(time.RFC3339)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// ListStatus returns every target with its monitor state.
func (c *Client) ListStatus(ctx context.Context) ([]handlers.TargetStatus, error) {
	var out []handlers.TargetStatus
	if err := c.get(ctx, "/api/v1/status", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStatus returns one target with its monitor state.
func (c *Client) GetStatus(ctx context.Context, id string) (*handlers.TargetStatus, error) {
	var out handlers.TargetStatus
	if err := c.get(ctx, "/api/v1/status/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunChecks checks every enabled target now.
func (c *Client) RunChecks(ctx context.Context) (*engine.CheckSummary, error) {
	var out engine.CheckSummary
	if err := c.post(ctx, "/api/v1/check", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckTarget checks one target now.
func (c *Client) CheckTarget(ctx context.Context, id string) (*engine.TargetResult, error) {
	var out engine.TargetResult
	if err := c.post(ctx, "/api/v1/targets/"+id+"/check", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCheckHistory returns check history, newest first.
func (c *Client) ListCheckHistory(ctx context.Context, p *HistoryParams) ([]domain.CheckRecord, error) {
	var out []domain.CheckRecord
	if err := c.get(ctx, "/api/v1/history/checks", p.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListNotifyHistory returns notification history, newest first.
func (c *Client) ListNotifyHistory(ctx context.Context, p *HistoryParams) ([]domain.NotifyRecord, error) {
	var out []domain.NotifyRecord
	if err := c.get(ctx, "/api/v1/history/notifications", p.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProviders returns the registered providers.
func (c *Client) ListProviders(ctx context.Context) ([]handlers.ProviderInfo, error) {
	var out []handlers.ProviderInfo
	if err := c.get(ctx, "/api/v1/providers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
