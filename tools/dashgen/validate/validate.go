// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the monitor does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/laiwenqiang/vps-stock-monitor/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings do
// not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every query expression of every panel in d, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	var all []dashboard.Panel
	for _, p := range d.Panels {
		if p.Panel != nil {
			all = append(all, *p.Panel)
		}
		if p.RowPanel != nil {
			all = append(all, p.RowPanel.Panels...)
		}
	}

	for i := range all {
		title := panelTitle(&all[i])
		exprs, err := panelExprs(&all[i])
		if err != nil {
			res.errorf("panel %q: %v", title, err)
			continue
		}
		if len(exprs) == 0 {
			res.warnf("panel %q has no queries", title)
		}
		for _, e := range exprs {
			checkExpr(&res, "panel "+title, e, known)
		}
	}

	return res
}

// Rules validates the expression of every rule in cr. Names defined by
// recording rules in cr count as known for later rules.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	seen := make(map[string]bool, len(known))
	for k, v := range known {
		seen[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule without record or alert name", g.Name)
				continue
			}
			checkExpr(&res, "rule "+name, r.Expr, seen)
			if r.Record != "" {
				seen[r.Record] = true
			}
		}
	}

	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}

	for _, name := range metricNames(parsed) {
		if !known[name] && !known[baseName(name)] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// baseName strips the series suffixes a histogram adds to its metric name.
func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}

// metricNames returns the metric names selected anywhere in expr.
func metricNames(expr parser.Expr) []string {
	var names []string
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

func panelTitle(p *dashboard.Panel) string {
	if p.Title == nil {
		return "(untitled)"
	}
	return *p.Title
}

// panelExprs extracts query expressions through the JSON form of the panel,
// which is what Grafana receives.
func panelExprs(p *dashboard.Panel) ([]string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding panel: %w", err)
	}

	var raw struct {
		Targets []struct {
			Expr string `json:"expr"`
		} `json:"targets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding panel targets: %w", err)
	}

	exprs := make([]string, 0, len(raw.Targets))
	for _, t := range raw.Targets {
		if t.Expr != "" {
			exprs = append(exprs, t.Expr)
		}
	}
	return exprs, nil
}
