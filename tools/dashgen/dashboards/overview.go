// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/laiwenqiang/vps-stock-monitor/tools/dashgen/panels"
)

// BuildOverview constructs the VSM Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("VSM Overview").
		Uid("vsm-overview").
		Tags([]string{"vsm", "vps-stock-monitor"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.InStockStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Checks.
	b.WithRow(dashboard.NewRowBuilder("Checks").
		WithPanel(panels.NextCheck()).
		WithPanel(panels.AutoDisabled()).
		WithPanel(panels.ChecksRate()).
		WithPanel(panels.CheckErrorRatio()).
		WithPanel(panels.CycleDuration()))

	// Row 4: Fetch.
	b.WithRow(dashboard.NewRowBuilder("Fetch").
		WithPanel(panels.FetchLatency()).
		WithPanel(panels.FetchErrors()).
		WithPanel(panels.ParseStrategies()))

	// Row 5: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
