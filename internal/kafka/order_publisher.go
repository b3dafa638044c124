package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/segmentio/kafka-go"
)

// OrderPublisher sends order envelopes to the order.created topic.
type OrderPublisher struct {
	Producer *Producer
}

func (p OrderPublisher) Publish(ctx context.Context, ev orders.Envelope) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Producer.Publish(ctx, []byte(ev.CorrelationID), b,
		kafka.Header{Key: "x-event-type", Value: []byte(ev.EventType)},
		kafka.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(ev.EventVersion))},
	)
}
