package client

import (
	"context"
	"fmt"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// targetRequest builds the writable fields the API accepts for create and
// update.
func targetRequest(t *domain.MonitorTarget) handlers.TargetBody {
	enabled := t.Enabled
	return handlers.TargetBody{
		Provider:            t.Provider,
		URL:                 t.URL,
		Name:                t.Name,
		Region:              t.Region,
		Plan:                t.Plan,
		SourceType:          t.SourceType,
		Enabled:             &enabled,
		NotifyOnRestock:     t.NotifyOnRestock,
		NotifyOnOutOfStock:  t.NotifyOnOutOfStock,
		NotifyOnPriceChange: t.NotifyOnPriceChange,
		MinNotifyInterval:   t.MinNotifyInterval,
	}
}

// ListTargets returns targets. enabled filters by status when non-nil.
func (c *Client) ListTargets(ctx context.Context, enabled *bool) ([]domain.MonitorTarget, error) {
	query := map[string]string{}
	if enabled != nil {
		query["enabled"] = fmt.Sprint(*enabled)
	}

	var targets []domain.MonitorTarget
	if err := c.get(ctx, "/api/v1/targets", query, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// GetTarget returns a single target by ID.
func (c *Client) GetTarget(ctx context.Context, id string) (*domain.MonitorTarget, error) {
	var t domain.MonitorTarget
	if err := c.get(ctx, "/api/v1/targets/"+id, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTarget creates a new target.
func (c *Client) CreateTarget(ctx context.Context, t *domain.MonitorTarget) (*domain.MonitorTarget, error) {
	var created domain.MonitorTarget
	if err := c.post(ctx, "/api/v1/targets", targetRequest(t), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTarget replaces the writable fields of an existing target.
func (c *Client) UpdateTarget(ctx context.Context, t *domain.MonitorTarget) (*domain.MonitorTarget, error) {
	var updated domain.MonitorTarget
	if err := c.put(ctx, "/api/v1/targets/"+t.ID, targetRequest(t), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetTargetEnabled enables or disables a target.
func (c *Client) SetTargetEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return c.put(ctx, fmt.Sprintf("/api/v1/targets/%s/enabled", id), body, nil)
}

// DeleteTarget deletes a target by ID.
func (c *Client) DeleteTarget(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/targets/"+id)
}
