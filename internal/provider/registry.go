package provider

import (
	"fmt"
	"slices"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// Registry is an ordered set of providers. It is built once at startup and
// read concurrently afterwards.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a registry. Providers registered later with the same
// id are ignored.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds p unless a provider with the same id already exists.
// It reports whether p was added.
func (r *Registry) Register(p Provider) bool {
	if _, err := r.Get(p.ID()); err == nil {
		return false
	}
	r.providers = append(r.providers, p)
	return true
}

// Get returns the provider with the given id.
func (r *Registry) Get(id string) (Provider, error) {
	for _, p := range r.providers {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
}

// For returns the first provider that supports t.
func (r *Registry) For(t *domain.MonitorTarget) (Provider, error) {
	for _, p := range r.providers {
		if p.Supports(t) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no provider handles %s", ErrUnsupportedTarget, t.URL)
}

// List returns the registered providers in registration order.
func (r *Registry) List() []Provider {
	return slices.Clone(r.providers)
}
