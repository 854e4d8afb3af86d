package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
)

// ProviderHandler lists the registered providers.
type ProviderHandler struct {
	providers *provider.Registry
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(r *provider.Registry) *ProviderHandler {
	return &ProviderHandler{providers: r}
}

// ProviderInfo describes one registered provider.
type ProviderInfo struct {
	ID      string   `json:"id" example:"dmit"`
	Name    string   `json:"name" example:"DMIT"`
	Domains []string `json:"domains,omitempty" example:"dmit.io"`
}

// ListProvidersOutput is the response body for listing providers.
type ListProvidersOutput struct {
	Body []ProviderInfo
}

// List returns providers in registration order.
func (h *ProviderHandler) List(_ context.Context, _ *struct{}) (*ListProvidersOutput, error) {
	list := h.providers.List()
	out := make([]ProviderInfo, 0, len(list))
	for _, p := range list {
		info := ProviderInfo{ID: p.ID(), Name: p.Name()}
		if d, ok := p.(interface{ Domains() []string }); ok {
			info.Domains = d.Domains()
		}
		out = append(out, info)
	}
	return &ListProvidersOutput{Body: out}, nil
}

// RegisterProviderRoutes registers provider endpoints with the Huma API.
func RegisterProviderRoutes(api huma.API, h *ProviderHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-providers",
		Method:      http.MethodGet,
		Path:        "/api/v1/providers",
		Summary:     "List providers",
		Description: "Returns the providers targets can reference, with the domains each one supports.",
		Tags:        []string{"providers"},
	}, h.List)
}
