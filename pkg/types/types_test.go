package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestSourceType_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.SourceType{"", "auto", "api", "json", "html"} {
		assert.True(t, s.Valid(), "source %q", s)
	}
	for _, s := range []domain.SourceType{"xml", "HTML", " api"} {
		assert.False(t, s.Valid(), "source %q", s)
	}
}

func TestMonitorTarget_DisplayName(t *testing.T) {
	t.Parallel()

	named := &domain.MonitorTarget{Name: "LAX Tiny", URL: "https://www.dmit.io/cart.php?pid=1"}
	assert.Equal(t, "LAX Tiny", named.DisplayName())

	unnamed := &domain.MonitorTarget{URL: "https://www.dmit.io/cart.php?pid=1"}
	assert.Equal(t, "https://www.dmit.io/cart.php?pid=1", unnamed.DisplayName())
}

func TestMonitorTarget_Host(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "lower cases host", url: "https://WWW.DMIT.io/cart.php", want: "www.dmit.io"},
		{name: "strips port", url: "http://127.0.0.1:8080/stock", want: "127.0.0.1"},
		{name: "relative url", url: "/cart.php?pid=1", wantErr: true},
		{name: "no host", url: "file:///etc/passwd", wantErr: true},
		{name: "unparsable", url: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tg := &domain.MonitorTarget{URL: tt.url}
			got, err := tg.Host()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotifyPolicy_Resolve(t *testing.T) {
	t.Parallel()

	def := domain.DefaultNotifyPolicy()

	tests := []struct {
		name   string
		target domain.MonitorTarget
		want   domain.NotifyPolicy
	}{
		{
			name:   "no overrides",
			target: domain.MonitorTarget{},
			want:   def,
		},
		{
			name: "all overrides",
			target: domain.MonitorTarget{
				NotifyOnRestock:     ptr(false),
				NotifyOnOutOfStock:  ptr(true),
				NotifyOnPriceChange: ptr(true),
				MinNotifyInterval:   ptr(15),
			},
			want: domain.NotifyPolicy{
				NotifyOnRestock:     false,
				NotifyOnOutOfStock:  true,
				NotifyOnPriceChange: true,
				MinNotifyInterval:   15,
			},
		},
		{
			name:   "non positive interval ignored",
			target: domain.MonitorTarget{MinNotifyInterval: ptr(0)},
			want:   def,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, def.Resolve(&tt.target))
		})
	}
}

func TestDefaultNotifyPolicy(t *testing.T) {
	t.Parallel()

	p := domain.DefaultNotifyPolicy()
	assert.True(t, p.NotifyOnRestock)
	assert.False(t, p.NotifyOnOutOfStock)
	assert.False(t, p.NotifyOnPriceChange)
	assert.Equal(t, 60, p.MinNotifyInterval)
}
