package notify

import (
	"context"
	"log/slog"
)

// LogNotifier implements Notifier by writing the message to a logger. It
// is used when no remote notification backend is configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs each message at info level.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

// Name implements Notifier.
func (n *LogNotifier) Name() string { return "log" }

// Send logs p and never fails.
func (n *LogNotifier) Send(_ context.Context, p *Payload) error {
	attrs := []any{
		"target", p.Target.ID,
		"url", p.Target.URL,
		"reason", p.Reason,
		"in_stock", p.Status != nil && p.Status.InStock,
	}
	if p.Status != nil && p.Status.Price != nil {
		attrs = append(attrs, "price", *p.Status.Price)
	}
	if p.Status != nil && p.Status.Qty != nil {
		attrs = append(attrs, "qty", *p.Status.Qty)
	}

	n.log.Info("stock notification", attrs...)
	return nil
}
