package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/laiwenqiang/vps-stock-monitor/internal/notify"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// Decision reasons.
const (
	ReasonFirstCheck = "First check"
	ReasonRestocked  = "Restocked"
	ReasonOutOfStock = "Out of stock"
	ReasonNoChange   = "No significant change"
	reasonTooSoonFmt = "Too soon (%d min < %d min)"
	reasonPriceFmt   = "Price changed: %s → %s"
)

// Decision is the outcome of comparing a fresh status with the previous
// state of a target.
type Decision struct {
	Notify bool   `json:"notify"`
	Reason string `json:"reason"`
}

// ShouldNotify decides whether next warrants a notification given the
// previous state of t. The first successful check never notifies, and no
// notification is sent within MinNotifyInterval minutes of the last one.
// Otherwise restock, stockout and price change are considered in that
// order, each gated by the policy resolved for t.
func ShouldNotify(
	t *domain.MonitorTarget,
	prev *domain.MonitorState,
	next *domain.StockStatus,
	now time.Time,
	global domain.NotifyPolicy,
) Decision {
	if prev == nil || prev.LastStatus == nil {
		return Decision{Reason: ReasonFirstCheck}
	}

	policy := global.Resolve(t)
	last := prev.LastStatus

	if prev.LastNotifiedAt != nil {
		interval := time.Duration(policy.MinNotifyInterval) * time.Minute
		elapsed := now.Sub(*prev.LastNotifiedAt)
		if elapsed < interval {
			return Decision{
				Reason: fmt.Sprintf(reasonTooSoonFmt,
					int(math.Round(elapsed.Minutes())), policy.MinNotifyInterval),
			}
		}
	}

	if policy.NotifyOnRestock && !last.InStock && next.InStock {
		return Decision{Notify: true, Reason: ReasonRestocked}
	}

	if policy.NotifyOnOutOfStock && last.InStock && !next.InStock {
		return Decision{Notify: true, Reason: ReasonOutOfStock}
	}

	if policy.NotifyOnPriceChange &&
		last.Price != nil && next.Price != nil && *last.Price != *next.Price {
		return Decision{
			Notify: true,
			Reason: fmt.Sprintf(reasonPriceFmt,
				notify.FormatNumber(*last.Price), notify.FormatNumber(*next.Price)),
		}
	}

	return Decision{Reason: ReasonNoChange}
}
