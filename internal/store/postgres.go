package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize overrides the default maximum number of connections.
func WithPoolSize(n int32) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = n
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

func targetArgs(t *domain.MonitorTarget) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                     t.ID,
		"provider":               t.Provider,
		"url":                    t.URL,
		"name":                   t.Name,
		"region":                 t.Region,
		"plan":                   t.Plan,
		"source_type":            string(t.SourceType),
		"enabled":                t.Enabled,
		"notify_on_restock":      t.NotifyOnRestock,
		"notify_on_out_of_stock": t.NotifyOnOutOfStock,
		"notify_on_price_change": t.NotifyOnPriceChange,
		"min_notify_interval":    t.MinNotifyInterval,
	}
}

// CreateTarget inserts a target. An empty ID is replaced with a new UUID.
func (s *PostgresStore) CreateTarget(ctx context.Context, t *domain.MonitorTarget) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := s.pool.QueryRow(ctx, queryCreateTarget, targetArgs(t)).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating target: %w", err)
	}
	return nil
}

// GetTarget retrieves a target by its ID.
func (s *PostgresStore) GetTarget(ctx context.Context, id string) (*domain.MonitorTarget, error) {
	t := &domain.MonitorTarget{}
	if err := scanTarget(s.pool.QueryRow(ctx, queryGetTarget, id), t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("target %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting target: %w", err)
	}
	return t, nil
}

// ListTargets returns all targets, optionally filtered to enabled only.
func (s *PostgresStore) ListTargets(ctx context.Context, enabledOnly bool) ([]domain.MonitorTarget, error) {
	query := queryListTargetsAll
	if enabledOnly {
		query = queryListTargetsEnabled
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying targets: %w", err)
	}
	defer rows.Close()

	var targets []domain.MonitorTarget
	for rows.Next() {
		var t domain.MonitorTarget
		if err := scanTarget(rows, &t); err != nil {
			return nil, fmt.Errorf("scanning target: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating targets: %w", err)
	}
	return targets, nil
}

// UpdateTarget replaces the mutable fields of an existing target.
func (s *PostgresStore) UpdateTarget(ctx context.Context, t *domain.MonitorTarget) error {
	err := s.pool.QueryRow(ctx, queryUpdateTarget, targetArgs(t)).Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("target %s: %w", t.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating target: %w", err)
	}
	return nil
}

// DeleteTarget removes a target; its state row is removed by cascade.
func (s *PostgresStore) DeleteTarget(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteTarget, id)
	if err != nil {
		return fmt.Errorf("deleting target: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("target %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetTargetEnabled enables or disables a target.
func (s *PostgresStore) SetTargetEnabled(ctx context.Context, id string, enabled bool) error {
	tag, err := s.pool.Exec(ctx, querySetTargetEnabled, id, enabled)
	if err != nil {
		return fmt.Errorf("setting target enabled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("target %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetState returns the monitor state of a target, or ErrNotFound if the
// target has never been checked.
func (s *PostgresStore) GetState(ctx context.Context, targetID string) (*domain.MonitorState, error) {
	st := &domain.MonitorState{}
	if err := scanState(s.pool.QueryRow(ctx, queryGetState, targetID), st); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("state for %s: %w", targetID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting state: %w", err)
	}
	return st, nil
}

// ListStates returns the state of every checked target.
func (s *PostgresStore) ListStates(ctx context.Context) ([]domain.MonitorState, error) {
	rows, err := s.pool.Query(ctx, queryListStates)
	if err != nil {
		return nil, fmt.Errorf("querying states: %w", err)
	}
	defer rows.Close()

	var states []domain.MonitorState
	for rows.Next() {
		var st domain.MonitorState
		if err := scanState(rows, &st); err != nil {
			return nil, fmt.Errorf("scanning state: %w", err)
		}
		states = append(states, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating states: %w", err)
	}
	return states, nil
}

// RecordSuccess stores the latest status and resets the error counter.
func (s *PostgresStore) RecordSuccess(
	ctx context.Context,
	targetID string,
	status *domain.StockStatus,
	at time.Time,
) error {
	b, err := encodeStatus(status)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, queryRecordSuccess, targetID, b, at); err != nil {
		return fmt.Errorf("recording success: %w", err)
	}
	return nil
}

// RecordError increments the consecutive error counter and returns its
// new value. The last successful status is kept.
func (s *PostgresStore) RecordError(
	ctx context.Context,
	targetID string,
	errText string,
	at time.Time,
) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryRecordError, targetID, at, errText).Scan(&count); err != nil {
		return 0, fmt.Errorf("recording error: %w", err)
	}
	return count, nil
}

// MarkNotified sets the last notification time of a target.
func (s *PostgresStore) MarkNotified(ctx context.Context, targetID string, at time.Time) error {
	if _, err := s.pool.Exec(ctx, queryMarkNotified, targetID, at); err != nil {
		return fmt.Errorf("marking notified: %w", err)
	}
	return nil
}

// InsertCheckRecord appends to the check history.
func (s *PostgresStore) InsertCheckRecord(ctx context.Context, r *domain.CheckRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	b, err := encodeStatus(r.Status)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, queryInsertCheckRecord,
		r.ID, r.TargetID, r.Timestamp, b, r.Error, r.DurationMS)
	if err != nil {
		return fmt.Errorf("inserting check record: %w", err)
	}
	return nil
}

// InsertNotifyRecord appends to the notification history.
func (s *PostgresStore) InsertNotifyRecord(ctx context.Context, r *domain.NotifyRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, queryInsertNotifyRecord,
		r.ID, r.TargetID, r.Timestamp, r.Reason, r.Message)
	if err != nil {
		return fmt.Errorf("inserting notify record: %w", err)
	}
	return nil
}

// ListCheckHistory returns check records, newest first.
func (s *PostgresStore) ListCheckHistory(ctx context.Context, q HistoryQuery) ([]domain.CheckRecord, error) {
	rows, err := s.pool.Query(ctx, queryListCheckHistory, q.TargetID, q.Since, q.EffectiveLimit())
	if err != nil {
		return nil, fmt.Errorf("querying check history: %w", err)
	}
	defer rows.Close()

	var records []domain.CheckRecord
	for rows.Next() {
		var (
			r      domain.CheckRecord
			status []byte
		)
		if err := rows.Scan(&r.ID, &r.TargetID, &r.Timestamp, &status, &r.Error, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("scanning check record: %w", err)
		}
		if r.Status, err = decodeStatus(status); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check history: %w", err)
	}
	return records, nil
}

// ListNotifyHistory returns notification records, newest first.
func (s *PostgresStore) ListNotifyHistory(ctx context.Context, q HistoryQuery) ([]domain.NotifyRecord, error) {
	rows, err := s.pool.Query(ctx, queryListNotifyHistory, q.TargetID, q.Since, q.EffectiveLimit())
	if err != nil {
		return nil, fmt.Errorf("querying notify history: %w", err)
	}
	defer rows.Close()

	var records []domain.NotifyRecord
	for rows.Next() {
		var r domain.NotifyRecord
		if err := rows.Scan(&r.ID, &r.TargetID, &r.Timestamp, &r.Reason, &r.Message); err != nil {
			return nil, fmt.Errorf("scanning notify record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notify history: %w", err)
	}
	return records, nil
}

// PruneHistory deletes check and notification records older than before
// and returns how many rows were removed.
func (s *PostgresStore) PruneHistory(ctx context.Context, before time.Time) (int64, error) {
	checks, err := s.pool.Exec(ctx, queryPruneCheckHistory, before)
	if err != nil {
		return 0, fmt.Errorf("pruning check history: %w", err)
	}
	notifies, err := s.pool.Exec(ctx, queryPruneNotifyHistory, before)
	if err != nil {
		return 0, fmt.Errorf("pruning notify history: %w", err)
	}
	return checks.RowsAffected() + notifies.RowsAffected(), nil
}

// scannable is implemented by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanTarget(row scannable, t *domain.MonitorTarget) error {
	var src string
	if err := row.Scan(
		&t.ID, &t.Provider, &t.URL, &t.Name, &t.Region, &t.Plan, &src, &t.Enabled,
		&t.NotifyOnRestock, &t.NotifyOnOutOfStock, &t.NotifyOnPriceChange, &t.MinNotifyInterval,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return err
	}
	t.SourceType = domain.SourceType(src)
	return nil
}

func scanState(row scannable, st *domain.MonitorState) error {
	var status []byte
	if err := row.Scan(
		&st.TargetID, &status, &st.LastCheckedAt, &st.LastNotifiedAt, &st.ErrorCount, &st.LastError,
	); err != nil {
		return err
	}
	var err error
	st.LastStatus, err = decodeStatus(status)
	return err
}
