// Package store defines the datastore abstraction for vps-stock-monitor.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// ErrNotFound is returned when a target or state row does not exist.
var ErrNotFound = errors.New("not found")

const (
	defaultLimit = 50
	maxLimit     = 500
)

// HistoryQuery filters history listings. Results are newest first.
type HistoryQuery struct {
	TargetID string     // empty means all targets
	Since    *time.Time // inclusive lower bound
	Limit    int        // default 50, max 500
}

// EffectiveLimit clamps Limit to [1, 500], defaulting to 50.
func (q HistoryQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

// Store defines all data access operations for vps-stock-monitor.
type Store interface {
	// Targets
	CreateTarget(ctx context.Context, t *domain.MonitorTarget) error
	GetTarget(ctx context.Context, id string) (*domain.MonitorTarget, error)
	ListTargets(ctx context.Context, enabledOnly bool) ([]domain.MonitorTarget, error)
	UpdateTarget(ctx context.Context, t *domain.MonitorTarget) error
	DeleteTarget(ctx context.Context, id string) error
	SetTargetEnabled(ctx context.Context, id string, enabled bool) error

	// State
	GetState(ctx context.Context, targetID string) (*domain.MonitorState, error)
	ListStates(ctx context.Context) ([]domain.MonitorState, error)
	RecordSuccess(ctx context.Context, targetID string, status *domain.StockStatus, at time.Time) error
	RecordError(ctx context.Context, targetID string, errText string, at time.Time) (int, error)
	MarkNotified(ctx context.Context, targetID string, at time.Time) error

	// History
	InsertCheckRecord(ctx context.Context, r *domain.CheckRecord) error
	InsertNotifyRecord(ctx context.Context, r *domain.NotifyRecord) error
	ListCheckHistory(ctx context.Context, q HistoryQuery) ([]domain.CheckRecord, error)
	ListNotifyHistory(ctx context.Context, q HistoryQuery) ([]domain.NotifyRecord, error)
	PruneHistory(ctx context.Context, before time.Time) (int64, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close() error
}

// encodeStatus marshals a status for a JSON column. A nil status is NULL.
func encodeStatus(s *domain.StockStatus) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling stock status: %w", err)
	}
	return b, nil
}

func decodeStatus(b []byte) (*domain.StockStatus, error) {
	if len(b) == 0 {
		return nil, nil
	}
	s := &domain.StockStatus{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("unmarshaling stock status: %w", err)
	}
	return s, nil
}
