package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api/handlers"
	"github.com/laiwenqiang/vps-stock-monitor/internal/engine"
	"github.com/laiwenqiang/vps-stock-monitor/internal/notify"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if header != nil {
		t.AppendHeader(header)
	}
	return t
}

func printTargetTable(w io.Writer, targets []domain.MonitorTarget) {
	t := newTable(w, table.Row{"ID", "Name", "Provider", "Region", "Plan", "Source", "Enabled"})
	for i := range targets {
		tg := &targets[i]
		t.AppendRow(table.Row{
			tg.ID,
			truncate(tg.DisplayName(), 40),
			tg.Provider,
			dash(tg.Region),
			dash(tg.Plan),
			sourceLabel(tg.SourceType),
			tg.Enabled,
		})
	}
	t.Render()
}

func printTargetDetail(w io.Writer, tg *domain.MonitorTarget) {
	t := newTable(w, nil)
	t.AppendRows([]table.Row{
		{"ID", tg.ID},
		{"Name", dash(tg.Name)},
		{"Provider", tg.Provider},
		{"URL", tg.URL},
		{"Region", dash(tg.Region)},
		{"Plan", dash(tg.Plan)},
		{"Source", sourceLabel(tg.SourceType)},
		{"Enabled", tg.Enabled},
		{"Notify on restock", optBool(tg.NotifyOnRestock)},
		{"Notify on out of stock", optBool(tg.NotifyOnOutOfStock)},
		{"Notify on price change", optBool(tg.NotifyOnPriceChange)},
		{"Min notify interval", optMinutes(tg.MinNotifyInterval)},
		{"Created", tg.CreatedAt.Local().Format(timeLayout)},
	})
	t.Render()
}

func printStatusTable(w io.Writer, rows []handlers.TargetStatus) {
	t := newTable(w, table.Row{"ID", "Name", "Stock", "Qty", "Price", "Checked", "Errors", "Last Error"})
	for i := range rows {
		r := &rows[i]
		stock, qty, price, checked, errs, lastErr := "-", "-", "-", "never", 0, "-"
		if s := r.State; s != nil {
			if s.LastStatus != nil {
				stock = notify.StockLabel(s.LastStatus)
				qty = optNumber(s.LastStatus.Qty)
				price = optNumber(s.LastStatus.Price)
			}
			checked = optTime(s.LastCheckedAt)
			errs = s.ErrorCount
			lastErr = truncate(dash(s.LastError), 40)
		}
		t.AppendRow(table.Row{
			r.Target.ID,
			truncate(r.Target.DisplayName(), 30),
			stock, qty, price, checked, errs, lastErr,
		})
	}
	t.Render()
}

func printCheckResults(w io.Writer, results []engine.TargetResult) {
	t := newTable(w, table.Row{"Target", "Result", "Stock", "Decision", "Notified", "Duration"})
	for i := range results {
		r := &results[i]
		result, stock := "ok", "-"
		if !r.Success {
			result = "error: " + truncate(r.Error, 40)
		}
		if r.Status != nil {
			stock = notify.StockLabel(r.Status)
		}
		notified := fmt.Sprint(r.Notified)
		if r.NotifyError != "" {
			notified = "failed: " + truncate(r.NotifyError, 30)
		}
		if r.Disabled {
			result += " (disabled)"
		}
		t.AppendRow(table.Row{
			r.TargetID,
			result,
			stock,
			dash(r.Decision.Reason),
			notified,
			(time.Duration(r.DurationMS) * time.Millisecond).String(),
		})
	}
	t.Render()
}

func printCheckHistory(w io.Writer, records []domain.CheckRecord) {
	t := newTable(w, table.Row{"Time", "Target", "Stock", "Qty", "Price", "Error", "Duration"})
	for i := range records {
		r := &records[i]
		stock, qty, price := "-", "-", "-"
		if r.Status != nil {
			stock = notify.StockLabel(r.Status)
			qty = optNumber(r.Status.Qty)
			price = optNumber(r.Status.Price)
		}
		t.AppendRow(table.Row{
			r.Timestamp.Local().Format(timeLayout),
			r.TargetID,
			stock, qty, price,
			truncate(dash(r.Error), 40),
			(time.Duration(r.DurationMS) * time.Millisecond).String(),
		})
	}
	t.Render()
}

func printNotifyHistory(w io.Writer, records []domain.NotifyRecord) {
	t := newTable(w, table.Row{"Time", "Target", "Reason"})
	for i := range records {
		r := &records[i]
		t.AppendRow(table.Row{r.Timestamp.Local().Format(timeLayout), r.TargetID, r.Reason})
	}
	t.Render()
}

func printProviderTable(w io.Writer, providers []handlers.ProviderInfo) {
	t := newTable(w, table.Row{"ID", "Name", "Domains"})
	for _, p := range providers {
		t.AppendRow(table.Row{p.ID, p.Name, dash(strings.Join(p.Domains, ", "))})
	}
	t.Render()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sourceLabel(s domain.SourceType) string {
	if s == "" {
		return string(domain.SourceAuto)
	}
	return string(s)
}

func optBool(b *bool) string {
	if b == nil {
		return "default"
	}
	return fmt.Sprint(*b)
}

func optMinutes(m *int) string {
	if m == nil {
		return "default"
	}
	return fmt.Sprintf("%d min", *m)
}

func optNumber(v *float64) string {
	if v == nil {
		return "-"
	}
	return notify.FormatNumber(*v)
}

func optTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(timeLayout)
}
