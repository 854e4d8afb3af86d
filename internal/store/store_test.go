package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func TestHistoryQuery_EffectiveLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero uses default", limit: 0, want: 50},
		{name: "negative uses default", limit: -3, want: 50},
		{name: "within range", limit: 120, want: 120},
		{name: "clamped to max", limit: 10000, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HistoryQuery{Limit: tt.limit}.EffectiveLimit())
		})
	}
}

func TestStatusCodec(t *testing.T) {
	t.Parallel()

	b, err := encodeStatus(nil)
	require.NoError(t, err)
	assert.Nil(t, b)

	got, err := decodeStatus(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	qty := 3.0
	in := &domain.StockStatus{
		InStock:   true,
		Qty:       &qty,
		Region:    "HKG",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	b, err = encodeStatus(in)
	require.NoError(t, err)

	got, err = decodeStatus(b)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = decodeStatus([]byte("{"))
	assert.Error(t, err)
}
