// Package notify defines the notification interface and implementations
// for stock change delivery.
package notify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// Payload contains the data needed to announce a stock change.
type Payload struct {
	Target       *domain.MonitorTarget
	Status       *domain.StockStatus
	Reason       string
	ProviderName string
}

// Notifier delivers a Payload to one channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, p *Payload) error
}

// displayZone is the zone notification timestamps are rendered in.
var displayZone = loadZone("Asia/Shanghai")

func loadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// StockLabel returns the human readable availability for s.
func StockLabel(s *domain.StockStatus) string {
	if s != nil && s.InStock {
		return "有货"
	}
	return "缺货"
}

func stockEmoji(s *domain.StockStatus) string {
	if s != nil && s.InStock {
		return "✅"
	}
	return "❌"
}

// FormatNumber renders v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTime renders t in the notification display zone.
func FormatTime(t time.Time) string {
	return t.In(displayZone).Format("2006/01/02 15:04:05")
}

func (p *Payload) provider() string {
	if p.ProviderName != "" {
		return p.ProviderName
	}
	return p.Target.Provider
}

func (p *Payload) timestamp() time.Time {
	if p.Status != nil && !p.Status.Timestamp.IsZero() {
		return p.Status.Timestamp
	}
	return time.Now()
}

// Text renders p as a plain multi-line message. It is stored in the
// notification history and printed by LogNotifier.
func (p *Payload) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", stockEmoji(p.Status), p.Target.DisplayName())
	fmt.Fprintf(&b, "原因: %s\n", p.Reason)
	fmt.Fprintf(&b, "状态: %s\n", StockLabel(p.Status))
	fmt.Fprintf(&b, "Provider: %s\n", p.provider())
	p.writeOptional(&b, "%s: %s\n", nil)
	fmt.Fprintf(&b, "链接: %s\n", p.Target.URL)
	fmt.Fprintf(&b, "时间: %s", FormatTime(p.timestamp()))

	return b.String()
}

// writeOptional appends region, plan, price and quantity lines that are
// known, using format with the label and value as arguments. Free-text
// values pass through esc when it is non-nil.
func (p *Payload) writeOptional(b *strings.Builder, format string, esc func(string) string) {
	if esc == nil {
		esc = func(s string) string { return s }
	}
	if p.Target.Region != "" {
		fmt.Fprintf(b, format, "地区", esc(p.Target.Region))
	}
	if p.Target.Plan != "" {
		fmt.Fprintf(b, format, "套餐", esc(p.Target.Plan))
	}
	if p.Status == nil {
		return
	}
	if p.Status.Price != nil {
		fmt.Fprintf(b, format, "价格", "$"+FormatNumber(*p.Status.Price))
	}
	if p.Status.Qty != nil {
		fmt.Fprintf(b, format, "数量", FormatNumber(*p.Status.Qty))
	}
}
