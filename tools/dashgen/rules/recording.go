package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "vsm-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "vsm-recording",
					Rules: []Rule{
						{
							Record: "vsm:http_requests:rate5m",
							Expr:   `sum(rate(vsm_http_requests_total[5m]))`,
						},
						{
							Record: "vsm:http_errors:rate5m",
							Expr:   `sum(rate(vsm_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "vsm:checks:rate5m",
							Expr:   `sum(rate(vsm_checks_total[5m]))`,
						},
						{
							Record: "vsm:check_errors:rate5m",
							Expr:   `sum(rate(vsm_checks_total{result="error"}[5m]))`,
						},
						{
							Record: "vsm:fetch_errors:rate5m",
							Expr:   `sum(rate(vsm_fetch_errors_total[5m])) by (provider)`,
						},
						{
							Record: "vsm:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(vsm_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
