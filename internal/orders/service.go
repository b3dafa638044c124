package orders

import (
	"context"
	"time"

	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Creator is the write side of Repo that Service drives.
type Creator interface {
	CreateOrder(ctx context.Context, customerID int64, items []ItemInput) (Receipt, error)
}

// EventPublisher receives envelopes for orders that have already committed.
type EventPublisher interface {
	Publish(ctx context.Context, ev Envelope) error
}

type Service struct {
	Repo     Creator
	Events   EventPublisher // nil disables events
	Producer string
}

// CreateOrder places the order and then announces it. A publish failure is
// logged and does not undo the committed order.
func (s *Service) CreateOrder(ctx context.Context, customerID int64, items []ItemInput) (Receipt, error) {
	rc, err := s.Repo.CreateOrder(ctx, customerID, items)
	if err != nil {
		logger.Warn(ctx, "create order failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return Receipt{}, err
	}
	logger.Info(ctx, "order created",
		zap.Int64("order_id", rc.OrderID),
		zap.Int64("customer_id", customerID),
		zap.String("total", rc.TotalAmount.StringFixed(2)),
		zap.Int("items", len(rc.Items)),
	)

	if s.Events == nil {
		return rc, nil
	}
	ev, err := s.envelope(ctx, rc)
	if err == nil {
		err = s.Events.Publish(ctx, ev)
	}
	if err != nil {
		logger.Error(ctx, "publish order created", err, zap.Int64("order_id", rc.OrderID))
	}
	return rc, nil
}

func (s *Service) envelope(ctx context.Context, rc Receipt) (Envelope, error) {
	payload, err := marshal(OrderCreatedPayload{
		OrderID:     rc.OrderID,
		CustomerID:  rc.CustomerID,
		Status:      StatusPending,
		Items:       rc.Items,
		TotalAmount: rc.TotalAmount,
	})
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Producer,
		TraceID:       traceID(ctx),
		CorrelationID: string(PartitionKey(rc.OrderID)),
		Payload:       payload,
	}, nil
}
