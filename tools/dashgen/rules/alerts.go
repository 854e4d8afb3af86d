package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// vps-stock-monitor operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "vsm-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "vsm-alerts",
					Rules: []Rule{
						{
							Alert: "VsmDown",
							Expr:  `absent(up{job="vps-stock-monitor"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "VPS Stock Monitor is down",
								"description": "The vps-stock-monitor job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "VsmReadinessDown",
							Expr:  `vsm_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "VPS Stock Monitor readiness check is failing",
								"description": "The store has been unreachable for more than 2 minutes.",
							},
						},
						{
							Alert: "VsmHighErrorRate",
							Expr:  `vsm:http_errors:rate5m / vsm:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on VPS Stock Monitor",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "VsmChecksStalled",
							Expr:  `vsm_scheduler_next_check_timestamp - time() < -600`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Scheduled checks are overdue",
								"description": "The next check cycle is more than 10 minutes past its scheduled time.",
							},
						},
						{
							Alert: "VsmCheckErrorsHigh",
							Expr:  `vsm:check_errors:rate5m / vsm:checks:rate5m > 0.5`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Most target checks are failing",
								"description": "More than half of all checks have failed for 15 minutes. A provider may be blocking requests.",
							},
						},
						{
							Alert: "VsmTargetAutoDisabled",
							Expr:  `increase(vsm_targets_auto_disabled_total[10m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "A target was disabled after repeated errors",
								"description": "Re-enable it with vsm targets enable once the upstream page is reachable again.",
							},
						},
						{
							Alert: "VsmNotificationFailures",
							Expr:  `increase(vsm_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more stock notifications (Telegram or Discord) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
