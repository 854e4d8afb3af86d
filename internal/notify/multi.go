package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/laiwenqiang/vps-stock-monitor/internal/metrics"
)

// Multi fans a Payload out to several notifiers. A failing notifier is
// logged and counted but does not stop delivery to the rest.
type Multi struct {
	notifiers []Notifier
	log       *slog.Logger
}

// NewMulti creates a fan-out notifier.
func NewMulti(log *slog.Logger, notifiers ...Notifier) *Multi {
	if log == nil {
		log = slog.Default()
	}
	return &Multi{notifiers: notifiers, log: log}
}

// Name implements Notifier.
func (m *Multi) Name() string { return "multi" }

// Len returns the number of wrapped notifiers.
func (m *Multi) Len() int { return len(m.notifiers) }

// Send delivers p to every notifier. The returned error joins every
// individual failure; it is nil when all succeeded.
func (m *Multi) Send(ctx context.Context, p *Payload) error {
	var errs []error

	for _, n := range m.notifiers {
		start := time.Now()
		err := n.Send(ctx, p)
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.NotificationFailuresTotal.WithLabelValues(n.Name()).Inc()
			m.log.Error("notification failed",
				"channel", n.Name(),
				"target", p.Target.ID,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
			continue
		}

		metrics.NotificationsSentTotal.WithLabelValues(n.Name()).Inc()
	}

	return errors.Join(errs...)
}
