package store

// SQL query constants for PostgresStore, organized by entity.

// Target queries.
const (
	targetColumns = `id, provider, url, name, region, plan, source_type, enabled,
		notify_on_restock, notify_on_out_of_stock, notify_on_price_change, min_notify_interval,
		created_at, updated_at`

	queryCreateTarget = `
		INSERT INTO targets (
			id, provider, url, name, region, plan, source_type, enabled,
			notify_on_restock, notify_on_out_of_stock, notify_on_price_change, min_notify_interval,
			created_at, updated_at
		) VALUES (
			@id, @provider, @url, @name, @region, @plan, @source_type, @enabled,
			@notify_on_restock, @notify_on_out_of_stock, @notify_on_price_change, @min_notify_interval,
			now(), now()
		)
		RETURNING created_at, updated_at`

	queryGetTarget = `SELECT ` + targetColumns + ` FROM targets WHERE id = $1`

	queryListTargetsAll = `SELECT ` + targetColumns + ` FROM targets ORDER BY created_at, id`

	queryListTargetsEnabled = `SELECT ` + targetColumns + ` FROM targets WHERE enabled ORDER BY created_at, id`

	queryUpdateTarget = `
		UPDATE targets SET
			provider = @provider,
			url = @url,
			name = @name,
			region = @region,
			plan = @plan,
			source_type = @source_type,
			enabled = @enabled,
			notify_on_restock = @notify_on_restock,
			notify_on_out_of_stock = @notify_on_out_of_stock,
			notify_on_price_change = @notify_on_price_change,
			min_notify_interval = @min_notify_interval,
			updated_at = now()
		WHERE id = @id
		RETURNING created_at, updated_at`

	queryDeleteTarget = `DELETE FROM targets WHERE id = $1`

	querySetTargetEnabled = `UPDATE targets SET enabled = $2, updated_at = now() WHERE id = $1`
)

// State queries.
const (
	stateColumns = `target_id, last_status, last_checked_at, last_notified_at, error_count, last_error`

	queryGetState = `SELECT ` + stateColumns + ` FROM monitor_state WHERE target_id = $1`

	queryListStates = `SELECT ` + stateColumns + ` FROM monitor_state ORDER BY target_id`

	queryRecordSuccess = `
		INSERT INTO monitor_state (target_id, last_status, last_checked_at, error_count, last_error)
		VALUES ($1, $2, $3, 0, '')
		ON CONFLICT (target_id) DO UPDATE SET
			last_status = EXCLUDED.last_status,
			last_checked_at = EXCLUDED.last_checked_at,
			error_count = 0,
			last_error = ''`

	queryRecordError = `
		INSERT INTO monitor_state (target_id, last_checked_at, error_count, last_error)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (target_id) DO UPDATE SET
			last_checked_at = EXCLUDED.last_checked_at,
			error_count = monitor_state.error_count + 1,
			last_error = EXCLUDED.last_error
		RETURNING error_count`

	queryMarkNotified = `
		INSERT INTO monitor_state (target_id, last_notified_at)
		VALUES ($1, $2)
		ON CONFLICT (target_id) DO UPDATE SET
			last_notified_at = EXCLUDED.last_notified_at`
)

// History queries.
const (
	queryInsertCheckRecord = `
		INSERT INTO check_history (id, target_id, checked_at, status, error_text, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)`

	queryInsertNotifyRecord = `
		INSERT INTO notify_history (id, target_id, notified_at, reason, message)
		VALUES ($1, $2, $3, $4, $5)`

	queryListCheckHistory = `
		SELECT id, target_id, checked_at, status, error_text, duration_ms
		FROM check_history
		WHERE ($1::text = '' OR target_id = $1)
			AND ($2::timestamptz IS NULL OR checked_at >= $2)
		ORDER BY checked_at DESC, id
		LIMIT $3`

	queryListNotifyHistory = `
		SELECT id, target_id, notified_at, reason, message
		FROM notify_history
		WHERE ($1::text = '' OR target_id = $1)
			AND ($2::timestamptz IS NULL OR notified_at >= $2)
		ORDER BY notified_at DESC, id
		LIMIT $3`

	queryPruneCheckHistory = `DELETE FROM check_history WHERE checked_at < $1`

	queryPruneNotifyHistory = `DELETE FROM notify_history WHERE notified_at < $1`
)
