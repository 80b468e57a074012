package notify

import (
	"context"

	"go.uber.org/zap"

	domorder "example.com/beadwork-storefront/app/internal/domain/order"
)

// LogHandoff records checkouts in the service log. It is used when no
// SMTP relay is configured.
type LogHandoff struct {
	logger *zap.Logger
}

func NewLogHandoff(logger *zap.Logger) *LogHandoff {
	return &LogHandoff{logger: logger}
}

func (h *LogHandoff) Handoff(ctx context.Context, o *domorder.Order) error {
	h.logger.Info("checkout handed off",
		zap.String("order_id", o.ID),
		zap.String("session_id", o.SessionID),
		zap.Int("lines", len(o.Lines)),
		zap.Int64("items", o.Totals.TotalItems),
		zap.String("total", o.Totals.Total.StringFixed(2)))
	return nil
}
