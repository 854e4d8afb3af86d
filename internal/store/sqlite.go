package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// sqliteTime is a fixed-width UTC layout so that text ordering matches
// time ordering.
const sqliteTime = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements Store on a single SQLite file (modernc.org/sqlite,
// no cgo). Suited to single-node deployments.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		if path != ":memory:" {
			dsn += "&_pragma=journal_mode(WAL)"
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// One connection serialises writers and keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return runSQLiteMigrations(ctx, s.db)
}

const sqliteTargetColumns = `id, provider, url, name, region, plan, source_type, enabled,
	notify_on_restock, notify_on_out_of_stock, notify_on_price_change, min_notify_interval,
	created_at, updated_at`

// CreateTarget inserts a target. An empty ID is replaced with a new UUID.
func (s *SQLiteStore) CreateTarget(ctx context.Context, t *domain.MonitorTarget) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO targets (`+sqliteTargetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Provider, t.URL, t.Name, t.Region, t.Plan, string(t.SourceType), t.Enabled,
		nullBool(t.NotifyOnRestock), nullBool(t.NotifyOnOutOfStock), nullBool(t.NotifyOnPriceChange),
		nullInt(t.MinNotifyInterval),
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("creating target: %w", err)
	}
	t.CreatedAt, t.UpdatedAt = now, now
	return nil
}

// GetTarget retrieves a target by its ID.
func (s *SQLiteStore) GetTarget(ctx context.Context, id string) (*domain.MonitorTarget, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sqliteTargetColumns+` FROM targets WHERE id = ?`, id)
	t := &domain.MonitorTarget{}
	if err := scanSQLiteTarget(row, t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("target %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting target: %w", err)
	}
	return t, nil
}

// ListTargets returns all targets, optionally filtered to enabled only.
func (s *SQLiteStore) ListTargets(ctx context.Context, enabledOnly bool) ([]domain.MonitorTarget, error) {
	query := `SELECT ` + sqliteTargetColumns + ` FROM targets`
	if enabledOnly {
		query += ` WHERE enabled = 1`
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying targets: %w", err)
	}
	defer rows.Close()

	var targets []domain.MonitorTarget
	for rows.Next() {
		var t domain.MonitorTarget
		if err := scanSQLiteTarget(rows, &t); err != nil {
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
func (s *SQLiteStore) UpdateTarget(ctx context.Context, t *domain.MonitorTarget) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE targets SET
			provider = ?, url = ?, name = ?, region = ?, plan = ?, source_type = ?, enabled = ?,
			notify_on_restock = ?, notify_on_out_of_stock = ?, notify_on_price_change = ?,
			min_notify_interval = ?, updated_at = ?
		WHERE id = ?`,
		t.Provider, t.URL, t.Name, t.Region, t.Plan, string(t.SourceType), t.Enabled,
		nullBool(t.NotifyOnRestock), nullBool(t.NotifyOnOutOfStock), nullBool(t.NotifyOnPriceChange),
		nullInt(t.MinNotifyInterval), formatTime(now),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating target: %w", err)
	}
	if err := expectRow(res, "target", t.ID); err != nil {
		return err
	}

	var created string
	if err := s.db.QueryRowContext(ctx, `SELECT created_at FROM targets WHERE id = ?`, t.ID).Scan(&created); err != nil {
		return fmt.Errorf("reading target timestamps: %w", err)
	}
	t.CreatedAt, err = parseTime(created)
	if err != nil {
		return err
	}
	t.UpdatedAt = now
	return nil
}

// DeleteTarget removes a target; its state row is removed by cascade.
func (s *SQLiteStore) DeleteTarget(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM targets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting target: %w", err)
	}
	return expectRow(res, "target", id)
}

// SetTargetEnabled enables or disables a target.
func (s *SQLiteStore) SetTargetEnabled(ctx context.Context, id string, enabled bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE targets SET enabled = ?, updated_at = ? WHERE id = ?`,
		enabled, formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("setting target enabled: %w", err)
	}
	return expectRow(res, "target", id)
}

const sqliteStateColumns = `target_id, last_status, last_checked_at, last_notified_at, error_count, last_error`

// GetState returns the monitor state of a target, or ErrNotFound if the
// target has never been checked.
func (s *SQLiteStore) GetState(ctx context.Context, targetID string) (*domain.MonitorState, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sqliteStateColumns+` FROM monitor_state WHERE target_id = ?`, targetID)
	st := &domain.MonitorState{}
	if err := scanSQLiteState(row, st); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("state for %s: %w", targetID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting state: %w", err)
	}
	return st, nil
}

// ListStates returns the state of every checked target.
func (s *SQLiteStore) ListStates(ctx context.Context) ([]domain.MonitorState, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sqliteStateColumns+` FROM monitor_state ORDER BY target_id`)
	if err != nil {
		return nil, fmt.Errorf("querying states: %w", err)
	}
	defer rows.Close()

	var states []domain.MonitorState
	for rows.Next() {
		var st domain.MonitorState
		if err := scanSQLiteState(rows, &st); err != nil {
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
func (s *SQLiteStore) RecordSuccess(
	ctx context.Context,
	targetID string,
	status *domain.StockStatus,
	at time.Time,
) error {
	b, err := encodeStatus(status)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO monitor_state (target_id, last_status, last_checked_at, error_count, last_error)
		VALUES (?, ?, ?, 0, '')
		ON CONFLICT (target_id) DO UPDATE SET
			last_status = excluded.last_status,
			last_checked_at = excluded.last_checked_at,
			error_count = 0,
			last_error = ''`,
		targetID, nullText(b), formatTime(at))
	if err != nil {
		return fmt.Errorf("recording success: %w", err)
	}
	return nil
}

// RecordError increments the consecutive error counter and returns its
// new value. The last successful status is kept.
func (s *SQLiteStore) RecordError(
	ctx context.Context,
	targetID string,
	errText string,
	at time.Time,
) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO monitor_state (target_id, last_checked_at, error_count, last_error)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (target_id) DO UPDATE SET
			last_checked_at = excluded.last_checked_at,
			error_count = monitor_state.error_count + 1,
			last_error = excluded.last_error
		RETURNING error_count`,
		targetID, formatTime(at), errText).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("recording error: %w", err)
	}
	return count, nil
}

// MarkNotified sets the last notification time of a target.
func (s *SQLiteStore) MarkNotified(ctx context.Context, targetID string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO monitor_state (target_id, last_notified_at)
		VALUES (?, ?)
		ON CONFLICT (target_id) DO UPDATE SET
			last_notified_at = excluded.last_notified_at`,
		targetID, formatTime(at))
	if err != nil {
		return fmt.Errorf("marking notified: %w", err)
	}
	return nil
}

// InsertCheckRecord appends to the check history.
func (s *SQLiteStore) InsertCheckRecord(ctx context.Context, r *domain.CheckRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	b, err := encodeStatus(r.Status)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO check_history (id, target_id, checked_at, status, error_text, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.TargetID, formatTime(r.Timestamp), nullText(b), r.Error, r.DurationMS)
	if err != nil {
		return fmt.Errorf("inserting check record: %w", err)
	}
	return nil
}

// InsertNotifyRecord appends to the notification history.
func (s *SQLiteStore) InsertNotifyRecord(ctx context.Context, r *domain.NotifyRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notify_history (id, target_id, notified_at, reason, message)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.TargetID, formatTime(r.Timestamp), r.Reason, r.Message)
	if err != nil {
		return fmt.Errorf("inserting notify record: %w", err)
	}
	return nil
}

// historyWhere builds the filter shared by both history listings.
func historyWhere(q HistoryQuery, timeColumn string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.TargetID != "" {
		conds = append(conds, "target_id = ?")
		args = append(args, q.TargetID)
	}
	if q.Since != nil {
		conds = append(conds, timeColumn+" >= ?")
		args = append(args, formatTime(*q.Since))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	return where + " ORDER BY " + timeColumn + " DESC, id LIMIT ?", append(args, q.EffectiveLimit())
}

// ListCheckHistory returns check records, newest first.
func (s *SQLiteStore) ListCheckHistory(ctx context.Context, q HistoryQuery) ([]domain.CheckRecord, error) {
	clause, args := historyWhere(q, "checked_at")
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, target_id, checked_at, status, error_text, duration_ms FROM check_history`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("querying check history: %w", err)
	}
	defer rows.Close()

	var records []domain.CheckRecord
	for rows.Next() {
		var (
			r       domain.CheckRecord
			checked string
			status  sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.TargetID, &checked, &status, &r.Error, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("scanning check record: %w", err)
		}
		if r.Timestamp, err = parseTime(checked); err != nil {
			return nil, err
		}
		if status.Valid {
			if r.Status, err = decodeStatus([]byte(status.String)); err != nil {
				return nil, err
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check history: %w", err)
	}
	return records, nil
}

// ListNotifyHistory returns notification records, newest first.
func (s *SQLiteStore) ListNotifyHistory(ctx context.Context, q HistoryQuery) ([]domain.NotifyRecord, error) {
	clause, args := historyWhere(q, "notified_at")
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, target_id, notified_at, reason, message FROM notify_history`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notify history: %w", err)
	}
	defer rows.Close()

	var records []domain.NotifyRecord
	for rows.Next() {
		var (
			r        domain.NotifyRecord
			notified string
		)
		if err := rows.Scan(&r.ID, &r.TargetID, &notified, &r.Reason, &r.Message); err != nil {
			return nil, fmt.Errorf("scanning notify record: %w", err)
		}
		if r.Timestamp, err = parseTime(notified); err != nil {
			return nil, err
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
func (s *SQLiteStore) PruneHistory(ctx context.Context, before time.Time) (int64, error) {
	cutoff := formatTime(before)

	checks, err := s.db.ExecContext(ctx, `DELETE FROM check_history WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning check history: %w", err)
	}
	notifies, err := s.db.ExecContext(ctx, `DELETE FROM notify_history WHERE notified_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning notify history: %w", err)
	}

	n1, _ := checks.RowsAffected()
	n2, _ := notifies.RowsAffected()
	return n1 + n2, nil
}

func scanSQLiteTarget(row scannable, t *domain.MonitorTarget) error {
	var (
		src                    string
		restock, oos, priceChg sql.NullBool
		interval               sql.NullInt64
		created, updated       string
	)
	if err := row.Scan(
		&t.ID, &t.Provider, &t.URL, &t.Name, &t.Region, &t.Plan, &src, &t.Enabled,
		&restock, &oos, &priceChg, &interval, &created, &updated,
	); err != nil {
		return err
	}

	t.SourceType = domain.SourceType(src)
	t.NotifyOnRestock = boolPtr(restock)
	t.NotifyOnOutOfStock = boolPtr(oos)
	t.NotifyOnPriceChange = boolPtr(priceChg)
	if interval.Valid {
		v := int(interval.Int64)
		t.MinNotifyInterval = &v
	}

	var err error
	if t.CreatedAt, err = parseTime(created); err != nil {
		return err
	}
	t.UpdatedAt, err = parseTime(updated)
	return err
}

func scanSQLiteState(row scannable, st *domain.MonitorState) error {
	var status, checked, notified sql.NullString
	if err := row.Scan(&st.TargetID, &status, &checked, &notified, &st.ErrorCount, &st.LastError); err != nil {
		return err
	}

	var err error
	if status.Valid {
		if st.LastStatus, err = decodeStatus([]byte(status.String)); err != nil {
			return err
		}
	}
	if st.LastCheckedAt, err = parseNullTime(checked); err != nil {
		return err
	}
	st.LastNotifiedAt, err = parseNullTime(notified)
	return err
}

func expectRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTime)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTime, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return t, nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func boolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullText(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
