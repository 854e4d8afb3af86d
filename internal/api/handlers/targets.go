package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// TargetHandler handles MonitorTarget CRUD operations.
type TargetHandler struct {
	store     store.Store
	providers *provider.Registry
}

// NewTargetHandler creates a new TargetHandler. The registry is used to
// validate that a target's provider exists and supports its URL.
func NewTargetHandler(s store.Store, providers *provider.Registry) *TargetHandler {
	return &TargetHandler{store: s, providers: providers}
}

// TargetBody is the writable part of a monitor target.
type TargetBody struct {
	Provider   string            `json:"provider" minLength:"1" example:"dmit" doc:"Provider id"`
	URL        string            `json:"url" minLength:"1" example:"https://www.dmit.io/cart.php?a=add&pid=1" doc:"Product page or API URL"`
	Name       string            `json:"name,omitempty" example:"DMIT LAX Pro" doc:"Display name"`
	Region     string            `json:"region,omitempty" example:"us-west" doc:"Region label"`
	Plan       string            `json:"plan,omitempty" example:"premium_tiny" doc:"Plan label"`
	SourceType domain.SourceType `json:"source_type,omitempty" enum:"auto,api,json,html" doc:"How the response is parsed"`
	Enabled    *bool             `json:"enabled,omitempty" doc:"Whether the target is checked (default true)"`

	NotifyOnRestock     *bool `json:"notify_on_restock,omitempty" doc:"Override the global restock setting"`
	NotifyOnOutOfStock  *bool `json:"notify_on_out_of_stock,omitempty" doc:"Override the global out-of-stock setting"`
	NotifyOnPriceChange *bool `json:"notify_on_price_change,omitempty" doc:"Override the global price-change setting"`
	MinNotifyInterval   *int  `json:"min_notify_interval,omitempty" minimum:"1" doc:"Minimum minutes between notifications"`
}

// apply copies b onto t, keeping t's enabled flag when b leaves it unset.
func (b *TargetBody) apply(t *domain.MonitorTarget) {
	t.Provider = b.Provider
	t.URL = b.URL
	t.Name = b.Name
	t.Region = b.Region
	t.Plan = b.Plan
	t.SourceType = b.SourceType
	if b.Enabled != nil {
		t.Enabled = *b.Enabled
	}
	t.NotifyOnRestock = b.NotifyOnRestock
	t.NotifyOnOutOfStock = b.NotifyOnOutOfStock
	t.NotifyOnPriceChange = b.NotifyOnPriceChange
	t.MinNotifyInterval = b.MinNotifyInterval
}

// ListTargetsInput is the query for listing targets.
type ListTargetsInput struct {
	Enabled string `query:"enabled" enum:"true,false" doc:"Filter by enabled status"`
}

// ListTargetsOutput is the response body for listing targets.
type ListTargetsOutput struct {
	Body []domain.MonitorTarget
}

// TargetIDInput is the path parameter shared by single-target operations.
type TargetIDInput struct {
	ID string `path:"id" doc:"Target ID"`
}

// TargetOutput is the response body for a single target.
type TargetOutput struct {
	Body *domain.MonitorTarget
}

// CreateTargetInput is the request body for creating a target.
type CreateTargetInput struct {
	Body TargetBody
}

// CreateTargetOutput is the response for a created target.
type CreateTargetOutput struct {
	Body *domain.MonitorTarget
}

// UpdateTargetInput is the request for replacing a target.
type UpdateTargetInput struct {
	ID   string `path:"id" doc:"Target ID"`
	Body TargetBody
}

// SetEnabledInput is the request for enabling or disabling a target.
type SetEnabledInput struct {
	ID   string `path:"id" doc:"Target ID"`
	Body struct {
		Enabled bool `json:"enabled" example:"true" doc:"Whether the target is checked"`
	}
}

// SetEnabledOutput is the response for the enabled toggle.
type SetEnabledOutput struct {
	Body StatusResponse
}

// DeleteTargetOutput is the empty response for a deleted target.
type DeleteTargetOutput struct{}

// List returns all targets, optionally only the enabled ones.
func (h *TargetHandler) List(ctx context.Context, input *ListTargetsInput) (*ListTargetsOutput, error) {
	targets, err := h.store.ListTargets(ctx, input.Enabled == "true")
	if err != nil {
		return nil, huma.Error500InternalServerError("listing targets: " + err.Error())
	}

	if input.Enabled == "false" {
		disabled := targets[:0]
		for _, t := range targets {
			if !t.Enabled {
				disabled = append(disabled, t)
			}
		}
		targets = disabled
	}

	if targets == nil {
		targets = []domain.MonitorTarget{}
	}

	return &ListTargetsOutput{Body: targets}, nil
}

// Get returns a single target.
func (h *TargetHandler) Get(ctx context.Context, input *TargetIDInput) (*TargetOutput, error) {
	t, err := h.store.GetTarget(ctx, input.ID)
	if err != nil {
		return nil, storeError("target", err)
	}
	return &TargetOutput{Body: t}, nil
}

// Create validates and stores a new target. New targets are enabled
// unless the body says otherwise.
func (h *TargetHandler) Create(ctx context.Context, input *CreateTargetInput) (*CreateTargetOutput, error) {
	t := &domain.MonitorTarget{Enabled: true}
	input.Body.apply(t)

	if err := h.validate(t); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	if err := h.store.CreateTarget(ctx, t); err != nil {
		return nil, huma.Error500InternalServerError("creating target: " + err.Error())
	}

	return &CreateTargetOutput{Body: t}, nil
}

// Update replaces the writable fields of an existing target.
func (h *TargetHandler) Update(ctx context.Context, input *UpdateTargetInput) (*TargetOutput, error) {
	t, err := h.store.GetTarget(ctx, input.ID)
	if err != nil {
		return nil, storeError("target", err)
	}

	input.Body.apply(t)
	if err := h.validate(t); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	if err := h.store.UpdateTarget(ctx, t); err != nil {
		return nil, storeError("target", err)
	}

	return &TargetOutput{Body: t}, nil
}

// SetEnabled enables or disables a target.
func (h *TargetHandler) SetEnabled(ctx context.Context, input *SetEnabledInput) (*SetEnabledOutput, error) {
	if err := h.store.SetTargetEnabled(ctx, input.ID, input.Body.Enabled); err != nil {
		return nil, storeError("target", err)
	}

	resp := &SetEnabledOutput{}
	resp.Body.Status = "updated"
	return resp, nil
}

// Delete removes a target and its monitor state.
func (h *TargetHandler) Delete(ctx context.Context, input *TargetIDInput) (*DeleteTargetOutput, error) {
	if err := h.store.DeleteTarget(ctx, input.ID); err != nil {
		return nil, storeError("target", err)
	}
	return &DeleteTargetOutput{}, nil
}

func (h *TargetHandler) validate(t *domain.MonitorTarget) error {
	if _, err := t.Host(); err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if !t.SourceType.Valid() {
		return fmt.Errorf("invalid source_type %q", t.SourceType)
	}

	p, err := h.providers.Get(t.Provider)
	if err != nil {
		return err
	}

	if !p.Supports(t) {
		return fmt.Errorf("provider %s does not support %s", p.ID(), t.URL)
	}

	return nil
}

// storeError maps ErrNotFound to 404 and everything else to 500.
func storeError(what string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound(what + " not found")
	}
	return huma.Error500InternalServerError(what + ": " + err.Error())
}

// RegisterTargetRoutes registers target endpoints with the Huma API.
func RegisterTargetRoutes(api huma.API, h *TargetHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-targets",
		Method:      http.MethodGet,
		Path:        "/api/v1/targets",
		Summary:     "List monitor targets",
		Description: "Returns all targets, optionally filtered by enabled status.",
		Tags:        []string{"targets"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-target",
		Method:      http.MethodGet,
		Path:        "/api/v1/targets/{id}",
		Summary:     "Get a target by ID",
		Tags:        []string{"targets"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-target",
		Method:        http.MethodPost,
		Path:          "/api/v1/targets",
		Summary:       "Create a target",
		Description:   "Creates a target. The URL must be absolute and supported by the named provider.",
		Tags:          []string{"targets"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-target",
		Method:      http.MethodPut,
		Path:        "/api/v1/targets/{id}",
		Summary:     "Update a target",
		Tags:        []string{"targets"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID: "set-target-enabled",
		Method:      http.MethodPut,
		Path:        "/api/v1/targets/{id}/enabled",
		Summary:     "Enable or disable a target",
		Tags:        []string{"targets"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.SetEnabled)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-target",
		Method:        http.MethodDelete,
		Path:          "/api/v1/targets/{id}",
		Summary:       "Delete a target",
		Description:   "Deletes a target and its monitor state. History rows are kept until pruned.",
		Tags:          []string{"targets"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)
}
