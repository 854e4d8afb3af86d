// Package provider fetches monitored pages and turns them into stock
// statuses. A Provider owns a set of domains; the Registry picks the
// provider responsible for a target.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/laiwenqiang/vps-stock-monitor/internal/metrics"
	"github.com/laiwenqiang/vps-stock-monitor/pkg/extract"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

const tracerName = "github.com/laiwenqiang/vps-stock-monitor/internal/provider"

// Provider checks the stock status of targets hosted on a vendor's site.
type Provider interface {
	ID() string
	Name() string
	Supports(t *domain.MonitorTarget) bool
	FetchStatus(ctx context.Context, t *domain.MonitorTarget) (*domain.StockStatus, error)
}

// HostProvider is a Provider bound to a fixed set of domains. A target is
// supported when its host equals one of the domains or is a subdomain of
// one.
type HostProvider struct {
	id      string
	name    string
	domains []string
	fetcher *Fetcher
	logger  *slog.Logger
}

// HostProviderOption configures a HostProvider.
type HostProviderOption func(*HostProvider)

// WithFetcher sets the fetcher used for requests.
func WithFetcher(f *Fetcher) HostProviderOption {
	return func(p *HostProvider) {
		p.fetcher = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) HostProviderOption {
	return func(p *HostProvider) {
		p.logger = l
	}
}

// NewHostProvider creates a provider for the given domains.
func NewHostProvider(id, name string, domains []string, opts ...HostProviderOption) *HostProvider {
	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "."))
		if d != "" {
			normalized = append(normalized, d)
		}
	}

	p := &HostProvider{
		id:      id,
		name:    name,
		domains: normalized,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetcher == nil {
		p.fetcher = NewFetcher()
	}
	return p
}

// NewDmitProvider returns the built-in provider for DMIT.
func NewDmitProvider(opts ...HostProviderOption) *HostProvider {
	return NewHostProvider("dmit", "DMIT", []string{"dmit.io"}, opts...)
}

// ID implements Provider.
func (p *HostProvider) ID() string { return p.id }

// Name implements Provider.
func (p *HostProvider) Name() string { return p.name }

// Domains returns the domains this provider handles.
func (p *HostProvider) Domains() []string { return slices.Clone(p.domains) }

// Supports implements Provider. Targets with unparsable or relative URLs
// are never supported.
func (p *HostProvider) Supports(t *domain.MonitorTarget) bool {
	host, err := t.Host()
	if err != nil {
		return false
	}
	for _, d := range p.domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// FetchStatus implements Provider. It downloads the target page and
// parses it with the target's source type. Fetch and parse errors are
// returned as produced. The returned status carries the target's region.
func (p *HostProvider) FetchStatus(
	ctx context.Context,
	t *domain.MonitorTarget,
) (*domain.StockStatus, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "provider.FetchStatus")
	defer span.End()
	span.SetAttributes(
		attribute.String("provider.id", p.id),
		attribute.String("target.id", t.ID),
		attribute.String("target.url", t.URL),
	)

	status, strategy, err := p.fetchStatus(ctx, t)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch status failed")
		return nil, err
	}

	metrics.ParseStrategyTotal.WithLabelValues(strategy).Inc()
	span.SetAttributes(
		attribute.String("parse.strategy", strategy),
		attribute.Bool("stock.in_stock", status.InStock),
	)
	return status, nil
}

func (p *HostProvider) fetchStatus(
	ctx context.Context,
	t *domain.MonitorTarget,
) (*domain.StockStatus, string, error) {
	if !p.Supports(t) {
		err := fmt.Errorf("%w: %s does not handle %s", ErrUnsupportedTarget, p.id, t.URL)
		metrics.FetchErrorsTotal.WithLabelValues(p.id, errorKind(err)).Inc()
		return nil, "", err
	}

	start := time.Now()
	body, err := p.fetcher.Fetch(ctx, t.URL)
	metrics.FetchDuration.WithLabelValues(p.id).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FetchErrorsTotal.WithLabelValues(p.id, errorKind(err)).Inc()
		return nil, "", err
	}

	res, err := extract.Parse(body, t.SourceType)
	if err != nil {
		metrics.FetchErrorsTotal.WithLabelValues(p.id, "parse").Inc()
		return nil, "", err
	}

	res.Status.Region = t.Region
	p.logger.Debug("fetched stock status",
		"provider", p.id,
		"target", t.ID,
		"strategy", res.Strategy,
		"in_stock", res.Status.InStock,
	)
	return res.Status, res.Strategy, nil
}
