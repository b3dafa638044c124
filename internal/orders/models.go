package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
}

type ItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// LineItem is an order item joined with its product name. ItemPrice is the
// extended price captured when the order was placed.
type LineItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	ItemPrice   decimal.Decimal `json:"item_price"`
}

type CustomerRef struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type OrderDetails struct {
	Order
	Customer CustomerRef `json:"customer"`
	Items    []LineItem  `json:"items"`
}

// Receipt describes a freshly committed order.
type Receipt struct {
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []ItemPrice     `json:"items"`
}
