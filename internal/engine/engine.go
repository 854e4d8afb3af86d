// Package engine runs stock checks against the configured targets, decides
// when a change is worth announcing and keeps state and history current.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/laiwenqiang/vps-stock-monitor/internal/metrics"
	"github.com/laiwenqiang/vps-stock-monitor/internal/notify"
	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

const (
	tracerName           = "github.com/laiwenqiang/vps-stock-monitor/internal/engine"
	defaultMaxErrorCount = 5
	defaultRetention     = 30 * 24 * time.Hour
)

// Engine checks targets and dispatches notifications.
type Engine struct {
	store     store.Store
	providers *provider.Registry
	notifier  notify.Notifier
	log       *slog.Logger

	policy        domain.NotifyPolicy
	maxErrorCount int
	staggerOffset time.Duration
	retention     time.Duration
	now           func() time.Time

	// mu serialises check runs so a target is never checked twice at once.
	mu sync.Mutex
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	providers *provider.Registry,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:         s,
		providers:     providers,
		notifier:      n,
		log:           slog.Default(),
		policy:        domain.DefaultNotifyPolicy(),
		maxErrorCount: defaultMaxErrorCount,
		staggerOffset: 2 * time.Second,
		retention:     defaultRetention,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNotifyPolicy sets the global notification defaults.
func WithNotifyPolicy(p domain.NotifyPolicy) EngineOption {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithMaxErrorCount sets how many consecutive failures disable a target.
// Zero or less never disables.
func WithMaxErrorCount(n int) EngineOption {
	return func(e *Engine) {
		e.maxErrorCount = n
	}
}

// WithStaggerOffset sets the delay between checking each target.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithHistoryRetention sets how long history records are kept.
func WithHistoryRetention(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.retention = d
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Policy returns the global notification defaults.
func (eng *Engine) Policy() domain.NotifyPolicy { return eng.policy }

// TargetResult is the outcome of checking one target.
type TargetResult struct {
	TargetID    string              `json:"target_id"`
	Success     bool                `json:"success"`
	Status      *domain.StockStatus `json:"status,omitempty"`
	Error       string              `json:"error,omitempty"`
	Decision    Decision            `json:"decision"`
	Notified    bool                `json:"notified"`
	NotifyError string              `json:"notify_error,omitempty"`
	Disabled    bool                `json:"disabled,omitempty"`
	DurationMS  int64               `json:"duration_ms"`
}

// CheckSummary aggregates one run over all enabled targets.
type CheckSummary struct {
	Success int            `json:"success"`
	Failed  int            `json:"failed"`
	Results []TargetResult `json:"results"`
}

// CheckTarget fetches the current status of t through the provider it
// names. It performs no persistence.
func (eng *Engine) CheckTarget(ctx context.Context, t *domain.MonitorTarget) (*domain.StockStatus, error) {
	p, err := eng.providers.Get(t.Provider)
	if err != nil {
		return nil, err
	}

	if !p.Supports(t) {
		return nil, fmt.Errorf("%w: provider %s does not support %s",
			provider.ErrUnsupportedTarget, p.Name(), t.URL)
	}

	return p.FetchStatus(ctx, t)
}

// RunChecks checks every enabled target in turn. A failing target is
// recorded and never aborts the run; the returned error is non-nil only
// when the targets cannot be listed or ctx is cancelled.
func (eng *Engine) RunChecks(ctx context.Context) (*CheckSummary, error) {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "engine.RunChecks")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.CheckCycleDuration.Observe(time.Since(start).Seconds())
	}()

	targets, err := eng.store.ListTargets(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing targets: %w", err)
	}
	span.SetAttributes(attribute.Int("targets", len(targets)))

	summary := &CheckSummary{Results: make([]TargetResult, 0, len(targets))}
	inStock := 0

	for i := range targets {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		res := eng.checkAndRecord(ctx, &targets[i])
		summary.Results = append(summary.Results, res)
		if res.Success {
			summary.Success++
			if res.Status.InStock {
				inStock++
			}
		} else {
			summary.Failed++
		}

		// Stagger between targets to avoid request bursts.
		if i < len(targets)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	metrics.TargetsInStock.Set(float64(inStock))
	eng.log.Info("check cycle complete",
		"targets", len(targets),
		"success", summary.Success,
		"failed", summary.Failed,
		"in_stock", inStock,
	)

	return summary, nil
}

// CheckAndRecord runs the full check pipeline for a single target.
func (eng *Engine) CheckAndRecord(ctx context.Context, t *domain.MonitorTarget) TargetResult {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.checkAndRecord(ctx, t)
}

func (eng *Engine) checkAndRecord(ctx context.Context, t *domain.MonitorTarget) TargetResult {
	res := TargetResult{TargetID: t.ID}

	prev, err := eng.store.GetState(ctx, t.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			eng.log.Warn("loading state failed", "target", t.ID, "error", err)
		}
		prev = nil
	}

	start := time.Now()
	status, checkErr := eng.CheckTarget(ctx, t)
	res.DurationMS = time.Since(start).Milliseconds()
	at := eng.now().UTC()

	record := &domain.CheckRecord{
		TargetID:   t.ID,
		Timestamp:  at,
		DurationMS: res.DurationMS,
	}

	if checkErr != nil {
		res.Error = checkErr.Error()
		record.Error = res.Error
		metrics.ChecksTotal.WithLabelValues("error").Inc()
		eng.log.Warn("check failed", "target", t.ID, "url", t.URL, "error", checkErr)

		count, err := eng.store.RecordError(ctx, t.ID, res.Error, at)
		if err != nil {
			eng.log.Error("recording error state failed", "target", t.ID, "error", err)
		} else if eng.maxErrorCount > 0 && count >= eng.maxErrorCount {
			res.Disabled = eng.disable(ctx, t, count)
		}
		eng.insertCheckRecord(ctx, record)
		return res
	}

	res.Success = true
	res.Status = status
	record.Status = status
	metrics.ChecksTotal.WithLabelValues("success").Inc()

	res.Decision = ShouldNotify(t, prev, status, at, eng.policy)

	if err := eng.store.RecordSuccess(ctx, t.ID, status, at); err != nil {
		eng.log.Error("recording state failed", "target", t.ID, "error", err)
	}
	eng.insertCheckRecord(ctx, record)

	eng.log.Debug("check complete",
		"target", t.ID,
		"in_stock", status.InStock,
		"reason", res.Decision.Reason,
	)

	if res.Decision.Notify {
		res.Notified, res.NotifyError = eng.sendNotification(ctx, t, status, res.Decision.Reason, at)
	}

	return res
}

func (eng *Engine) disable(ctx context.Context, t *domain.MonitorTarget, count int) bool {
	if err := eng.store.SetTargetEnabled(ctx, t.ID, false); err != nil {
		eng.log.Error("auto-disable failed", "target", t.ID, "error", err)
		return false
	}
	metrics.TargetsAutoDisabledTotal.Inc()
	eng.log.Warn("target disabled after repeated errors",
		"target", t.ID,
		"error_count", count,
		"max_error_count", eng.maxErrorCount,
	)
	return true
}

func (eng *Engine) insertCheckRecord(ctx context.Context, r *domain.CheckRecord) {
	if err := eng.store.InsertCheckRecord(ctx, r); err != nil {
		eng.log.Error("recording check history failed", "target", r.TargetID, "error", err)
	}
}

// sendNotification delivers the change and records it. The target is only
// marked notified when delivery succeeded, so a failed send does not start
// the minimum interval.
func (eng *Engine) sendNotification(
	ctx context.Context,
	t *domain.MonitorTarget,
	status *domain.StockStatus,
	reason string,
	at time.Time,
) (bool, string) {
	payload := &notify.Payload{
		Target: t,
		Status: status,
		Reason: reason,
	}
	if p, err := eng.providers.Get(t.Provider); err == nil {
		payload.ProviderName = p.Name()
	}

	if err := eng.notifier.Send(ctx, payload); err != nil {
		eng.log.Error("notification failed", "target", t.ID, "reason", reason, "error", err)
		return false, err.Error()
	}

	if err := eng.store.MarkNotified(ctx, t.ID, at); err != nil {
		eng.log.Error("marking notified failed", "target", t.ID, "error", err)
	}

	rec := &domain.NotifyRecord{
		TargetID:  t.ID,
		Timestamp: at,
		Reason:    reason,
		Message:   payload.Text(),
	}
	if err := eng.store.InsertNotifyRecord(ctx, rec); err != nil {
		eng.log.Error("recording notify history failed", "target", t.ID, "error", err)
	}

	eng.log.Info("notification sent", "target", t.ID, "reason", reason)
	return true, ""
}

// PruneHistory removes check and notification history older than the
// configured retention.
func (eng *Engine) PruneHistory(ctx context.Context) (int64, error) {
	if eng.retention <= 0 {
		return 0, nil
	}

	before := eng.now().Add(-eng.retention)
	n, err := eng.store.PruneHistory(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}

	metrics.HistoryPrunedTotal.Add(float64(n))
	eng.log.Info("history pruned", "removed", n, "before", before)
	return n, nil
}
