package engine

import (
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/internal/metrics"
)

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	sched, err := NewScheduler(f.engine, 5*time.Minute, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 2)
	assert.NotZero(t, sched.checkEntryID)
	assert.NotZero(t, sched.pruneEntryID)
	assert.NotEqual(t, sched.checkEntryID, sched.pruneEntryID)
}

func TestNewScheduler_WithoutPrune(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	sched, err := NewScheduler(f.engine, 5*time.Minute, 0, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
	assert.Zero(t, sched.pruneEntryID)
}

func TestNewScheduler_InvalidInterval(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := NewScheduler(f.engine, 0, time.Hour, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check interval")
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	sched, err := NewScheduler(f.engine, time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	sched, err := NewScheduler(f.engine, 15*time.Minute, 6*time.Hour, quietLogger())
	require.NoError(t, err)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextCheckTimestamp), float64(0))
	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextPruneTimestamp), float64(0))
}
