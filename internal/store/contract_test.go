package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func testTarget(url string) *domain.MonitorTarget {
	return &domain.MonitorTarget{
		Provider:   "dmit",
		URL:        url,
		Name:       "LAX Pro MALIBU",
		Region:     "LAX",
		Plan:       "PVM.LAX.Pro.MALIBU",
		SourceType: domain.SourceAuto,
		Enabled:    true,
	}
}

// runStoreContract exercises behavior every Store implementation must share.
// s must be freshly migrated and empty.
func runStoreContract(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, s.Ping(ctx))
	})

	t.Run("migrate is idempotent", func(t *testing.T) {
		require.NoError(t, s.Migrate(ctx))
	})

	a := testTarget("https://www.dmit.io/cart.php?a=add&pid=100")
	a.NotifyOnOutOfStock = ptr(true)
	a.MinNotifyInterval = ptr(15)
	b := testTarget("https://www.dmit.io/cart.php?a=add&pid=200")
	b.Enabled = false

	t.Run("create and get target", func(t *testing.T) {
		require.NoError(t, s.CreateTarget(ctx, a))
		require.NoError(t, s.CreateTarget(ctx, b))
		require.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.False(t, a.CreatedAt.IsZero())

		got, err := s.GetTarget(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.URL, got.URL)
		assert.Equal(t, "LAX", got.Region)
		assert.Equal(t, domain.SourceAuto, got.SourceType)
		assert.True(t, got.Enabled)
		assert.Nil(t, got.NotifyOnRestock)
		require.NotNil(t, got.NotifyOnOutOfStock)
		assert.True(t, *got.NotifyOnOutOfStock)
		require.NotNil(t, got.MinNotifyInterval)
		assert.Equal(t, 15, *got.MinNotifyInterval)
	})

	t.Run("get missing target", func(t *testing.T) {
		_, err := s.GetTarget(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list targets", func(t *testing.T) {
		all, err := s.ListTargets(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		enabled, err := s.ListTargets(ctx, true)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, a.ID, enabled[0].ID)
	})

	t.Run("update target", func(t *testing.T) {
		b.Name = "HKG Premium"
		b.NotifyOnPriceChange = ptr(true)
		require.NoError(t, s.UpdateTarget(ctx, b))

		got, err := s.GetTarget(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "HKG Premium", got.Name)
		require.NotNil(t, got.NotifyOnPriceChange)
		assert.True(t, *got.NotifyOnPriceChange)

		missing := testTarget("https://dmit.io/x")
		missing.ID = "missing"
		assert.ErrorIs(t, s.UpdateTarget(ctx, missing), store.ErrNotFound)
	})

	t.Run("set target enabled", func(t *testing.T) {
		require.NoError(t, s.SetTargetEnabled(ctx, b.ID, true))
		got, err := s.GetTarget(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, got.Enabled)

		assert.ErrorIs(t, s.SetTargetEnabled(ctx, "missing", true), store.ErrNotFound)
	})

	t.Run("state lifecycle", func(t *testing.T) {
		_, err := s.GetState(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		status := &domain.StockStatus{InStock: true, Qty: ptr(4.0), Price: ptr(39.9), Region: "LAX", Timestamp: base}
		require.NoError(t, s.RecordSuccess(ctx, a.ID, status, base))

		st, err := s.GetState(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, st.LastStatus)
		assert.True(t, st.LastStatus.InStock)
		assert.InDelta(t, 4.0, *st.LastStatus.Qty, 1e-9)
		require.NotNil(t, st.LastCheckedAt)
		assert.True(t, base.Equal(*st.LastCheckedAt))
		assert.Zero(t, st.ErrorCount)
		assert.Nil(t, st.LastNotifiedAt)

		n, err := s.RecordError(ctx, a.ID, "HTTP 403 Forbidden", base.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		n, err = s.RecordError(ctx, a.ID, "request timed out", base.Add(2*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		st, err = s.GetState(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, st.ErrorCount)
		assert.Equal(t, "request timed out", st.LastError)
		require.NotNil(t, st.LastStatus, "errors keep the last good status")
		assert.True(t, st.LastStatus.InStock)

		require.NoError(t, s.MarkNotified(ctx, a.ID, base.Add(3*time.Minute)))
		require.NoError(t, s.RecordSuccess(ctx, a.ID, &domain.StockStatus{InStock: false}, base.Add(4*time.Minute)))

		st, err = s.GetState(ctx, a.ID)
		require.NoError(t, err)
		assert.Zero(t, st.ErrorCount)
		assert.Empty(t, st.LastError)
		assert.False(t, st.LastStatus.InStock)
		require.NotNil(t, st.LastNotifiedAt)
		assert.True(t, base.Add(3*time.Minute).Equal(*st.LastNotifiedAt))

		n, err = s.RecordError(ctx, b.ID, "boom", base)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		states, err := s.ListStates(ctx)
		require.NoError(t, err)
		assert.Len(t, states, 2)
	})

	t.Run("check history", func(t *testing.T) {
		for i := range 3 {
			require.NoError(t, s.InsertCheckRecord(ctx, &domain.CheckRecord{
				TargetID:   a.ID,
				Timestamp:  base.Add(time.Duration(i) * time.Minute),
				Status:     &domain.StockStatus{InStock: i%2 == 0},
				DurationMS: int64(100 + i),
			}))
		}
		require.NoError(t, s.InsertCheckRecord(ctx, &domain.CheckRecord{
			TargetID:  b.ID,
			Timestamp: base.Add(30 * time.Second),
			Error:     "HTTP 503 Service Unavailable",
		}))

		all, err := s.ListCheckHistory(ctx, store.HistoryQuery{})
		require.NoError(t, err)
		require.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			assert.False(t, all[i].Timestamp.After(all[i-1].Timestamp), "newest first")
		}
		assert.True(t, base.Add(2*time.Minute).Equal(all[0].Timestamp))

		onlyA, err := s.ListCheckHistory(ctx, store.HistoryQuery{TargetID: a.ID, Limit: 2})
		require.NoError(t, err)
		require.Len(t, onlyA, 2)
		assert.Equal(t, int64(102), onlyA[0].DurationMS)
		require.NotNil(t, onlyA[0].Status)
		assert.True(t, onlyA[0].Status.InStock)

		since := base.Add(time.Minute)
		recent, err := s.ListCheckHistory(ctx, store.HistoryQuery{Since: &since})
		require.NoError(t, err)
		assert.Len(t, recent, 2)

		onlyB, err := s.ListCheckHistory(ctx, store.HistoryQuery{TargetID: b.ID})
		require.NoError(t, err)
		require.Len(t, onlyB, 1)
		assert.Nil(t, onlyB[0].Status)
		assert.Equal(t, "HTTP 503 Service Unavailable", onlyB[0].Error)
	})

	t.Run("notify history", func(t *testing.T) {
		require.NoError(t, s.InsertNotifyRecord(ctx, &domain.NotifyRecord{
			TargetID: a.ID, Timestamp: base, Reason: "Restocked", Message: "LAX Pro is back",
		}))
		require.NoError(t, s.InsertNotifyRecord(ctx, &domain.NotifyRecord{
			TargetID: a.ID, Timestamp: base.Add(time.Hour), Reason: "Out of stock",
		}))

		got, err := s.ListNotifyHistory(ctx, store.HistoryQuery{TargetID: a.ID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Out of stock", got[0].Reason)
		assert.Equal(t, "Restocked", got[1].Reason)
		assert.Equal(t, "LAX Pro is back", got[1].Message)
	})

	t.Run("prune history", func(t *testing.T) {
		// Removes the a-checks at +0 and +1m, b's check at +30s, and the
		// notification at +0.
		n, err := s.PruneHistory(ctx, base.Add(90*time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		checks, err := s.ListCheckHistory(ctx, store.HistoryQuery{})
		require.NoError(t, err)
		assert.Len(t, checks, 1)

		notifies, err := s.ListNotifyHistory(ctx, store.HistoryQuery{})
		require.NoError(t, err)
		assert.Len(t, notifies, 1)
	})

	t.Run("delete target removes state", func(t *testing.T) {
		require.NoError(t, s.DeleteTarget(ctx, a.ID))

		_, err := s.GetTarget(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.GetState(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		assert.ErrorIs(t, s.DeleteTarget(ctx, a.ID), store.ErrNotFound)
	})
}
