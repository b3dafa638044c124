package orders

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
)

const EventOrderCreated = "OrderCreated"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type ItemPrice struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	ItemPrice decimal.Decimal `json:"item_price"`
}

type OrderCreatedPayload struct {
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	Status      Status          `json:"status"`
	Items       []ItemPrice     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func marshal(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// traceID reuses the HTTP request id when there is one.
func traceID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}
