package payment

import (
	"context"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Quote struct {
	OrderID int64           `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Status  orders.Status   `json:"status"`
	Method  Method          `json:"method"`
	Payable bool            `json:"payable"` // status may still move to paid
}

// OrderReader resolves the order a quote is for.
type OrderReader interface {
	GetOrderDetails(ctx context.Context, orderID int64) (orders.OrderDetails, bool, error)
}

type Service struct {
	Orders   OrderReader
	Selector MethodSelector
}

// Quote reads the order's total and status and selects a payment method. It
// does not charge anything and leaves the order status untouched.
func (s *Service) Quote(ctx context.Context, orderID int64) (Quote, error) {
	d, ok, err := s.Orders.GetOrderDetails(ctx, orderID)
	if err != nil {
		return Quote{}, err
	}
	if !ok {
		return Quote{}, apperr.NotFound("order %d not found", orderID)
	}

	sel := s.Selector
	if sel == nil {
		sel = RandomSelector{}
	}
	q := Quote{
		OrderID: d.ID,
		Amount:  d.TotalAmount,
		Status:  d.Status,
		Method:  sel.Select(Methods),
		Payable: orders.CanTransition(d.Status, orders.StatusPaid),
	}
	logger.Info(ctx, "payment quoted",
		zap.Int64("order_id", q.OrderID),
		zap.String("amount", q.Amount.StringFixed(2)),
		zap.String("status", string(q.Status)),
		zap.String("method", string(q.Method)),
		zap.Bool("payable", q.Payable),
	)
	return q, nil
}
