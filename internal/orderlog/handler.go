// Package orderlog tails order.created events and writes one log line per
// order.
package orderlog

import (
	"context"
	"encoding/json"

	kafkax "github.com/ariefcatur/simple-shop/internal/kafka"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

// Handle logs OrderCreated events. Undecodable messages are logged and
// skipped so they do not block the partition.
func (h *Handler) Handle(_ context.Context, m kafka.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		h.Log.Warn("skipping undecodable message", zap.Int64("offset", m.Offset), zap.Error(err))
		return nil
	}
	if env.EventType != orders.EventOrderCreated {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
	if err != nil {
		h.Log.Warn("skipping bad payload", zap.String("event_id", env.EventID), zap.Error(err))
		return nil
	}
	h.Log.Info("order created",
		zap.String("event_id", env.EventID),
		zap.String("producer", env.Producer),
		zap.Int64("order_id", p.OrderID),
		zap.Int64("customer_id", p.CustomerID),
		zap.Int("items", len(p.Items)),
		zap.String("total", p.TotalAmount.StringFixed(2)),
		zap.Time("occurred_at", env.OccurredAt),
	)
	return nil
}
