package extract_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laiwenqiang/vps-stock-monitor/pkg/extract"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func ptr[T any](v T) *T { return &v }

var ignoreTimestamp = cmpopts.IgnoreFields(domain.StockStatus{}, "Timestamp")

func TestParseAPIResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data map[string]any
		want domain.StockStatus
	}{
		{
			name: "available with stock and price",
			data: map[string]any{"available": true, "stock": 5.0, "price": 9.99},
			want: domain.StockStatus{InStock: true, Qty: ptr(5.0), Price: ptr(9.99)},
		},
		{
			name: "zero stock is out of stock",
			data: map[string]any{"stock": 0.0},
			want: domain.StockStatus{InStock: false, Qty: ptr(0.0)},
		},
		{
			name: "string stock is coerced",
			data: map[string]any{"stock": "3"},
			want: domain.StockStatus{InStock: true, Qty: ptr(3.0)},
		},
		{
			name: "explicit available false beats positive stock",
			data: map[string]any{"available": "false", "stock": 10.0},
			want: domain.StockStatus{InStock: false, Qty: ptr(10.0)},
		},
		{
			name: "inStock string flag",
			data: map[string]any{"inStock": "TRUE"},
			want: domain.StockStatus{InStock: true},
		},
		{
			name: "available wins over inStock",
			data: map[string]any{"available": false, "inStock": true},
			want: domain.StockStatus{InStock: false},
		},
		{
			name: "unrecognized available falls through to inStock",
			data: map[string]any{"available": "maybe", "inStock": true},
			want: domain.StockStatus{InStock: true},
		},
		{
			name: "unparseable price is omitted",
			data: map[string]any{"available": true, "price": "call us"},
			want: domain.StockStatus{InStock: true},
		},
		{
			name: "no signal at all",
			data: map[string]any{"foo": 1.0},
			want: domain.StockStatus{InStock: false},
		},
		{
			name: "empty object",
			data: map[string]any{},
			want: domain.StockStatus{InStock: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.ParseAPIResponse(tt.data)
			require.NoError(t, err)
			assert.False(t, got.Timestamp.IsZero())
			assert.Empty(t, got.RawSource)
			if diff := cmp.Diff(tt.want, *got, ignoreTimestamp); diff != "" {
				t.Errorf("ParseAPIResponse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAPIResponse_StockImpliesAvailability(t *testing.T) {
	t.Parallel()

	for _, n := range []float64{1, 2, 17, 250.5} {
		for _, p := range []float64{0, 4.99, 1299} {
			got, err := extract.ParseAPIResponse(map[string]any{"stock": n, "price": p})
			require.NoError(t, err)
			assert.True(t, got.InStock)
			require.NotNil(t, got.Qty)
			require.NotNil(t, got.Price)
			assert.InDelta(t, n, *got.Qty, 1e-9)
			assert.InDelta(t, p, *got.Price, 1e-9)
		}
	}
}

func TestParseAPIResponse_NotAnObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data any
		kind string
	}{
		{name: "null", data: nil, kind: "null"},
		{name: "nil map", data: map[string]any(nil), kind: "object"},
		{name: "array", data: []any{map[string]any{"available": true}}, kind: "array"},
		{name: "string", data: "in stock", kind: "string"},
		{name: "number", data: 1.0, kind: "number"},
		{name: "boolean", data: true, kind: "boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.ParseAPIResponse(tt.data)
			require.ErrorIs(t, err, extract.ErrInvalidResponse)
			assert.Contains(t, err.Error(), tt.kind)
			assert.Nil(t, got)
		})
	}
}
