package orders

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const foreignKeyViolation = "23503"

type Repo struct{ DB postgres.DB }

func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return apperr.Validation("order needs at least one item")
	}
	for i, it := range items {
		if it.Quantity < 1 {
			return apperr.Validation("item %d: quantity must be at least 1, got %d", i, it.Quantity)
		}
		// Quantity is an INTEGER column
		if it.Quantity > math.MaxInt32 {
			return apperr.Validation("item %d: quantity %d is too large", i, it.Quantity)
		}
	}
	return nil
}

// CreateOrder places an order in a transaction it begins and owns.
func (r *Repo) CreateOrder(ctx context.Context, customerID int64, items []ItemInput) (Receipt, error) {
	return r.CreateOrderInTx(ctx, nil, customerID, items)
}

// CreateOrderInTx places an order inside tx when the caller holds one; the
// caller then decides commit or rollback. With a nil tx it behaves like
// CreateOrder.
//
// Totals are computed from current product prices, never from the caller. Each
// item stores price × quantity as a snapshot; later price changes do not touch
// it. An unknown product aborts the whole order.
func (r *Repo) CreateOrderInTx(ctx context.Context, tx pgx.Tx, customerID int64, items []ItemInput) (Receipt, error) {
	if err := validateItems(items); err != nil {
		return Receipt{}, err
	}

	var rc Receipt
	err := postgres.InTx(ctx, r.DB, tx, func(tx pgx.Tx) error {
		var err error
		rc, err = insertOrder(ctx, tx, customerID, items)
		return err
	})
	if err != nil {
		return Receipt{}, apperr.AsStorage("create order", err)
	}
	return rc, nil
}

func insertOrder(ctx context.Context, tx pgx.Tx, customerID int64, items []ItemInput) (Receipt, error) {
	rc := Receipt{CustomerID: customerID, TotalAmount: decimal.Zero, Items: make([]ItemPrice, 0, len(items))}

	err := tx.QueryRow(ctx, `
		INSERT INTO Orders (CustomerID, OrderDate, TotalAmount, OrderStatus)
		VALUES ($1, now(), 0, $2)
		RETURNING OrderID`, customerID, string(StatusPending),
	).Scan(&rc.OrderID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return Receipt{}, apperr.NotFound("customer %d not found", customerID)
		}
		return Receipt{}, apperr.Storage("insert order", err)
	}

	for _, it := range items {
		var price decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT Price FROM Products WHERE ProductID = $1 FOR SHARE`, it.ProductID).Scan(&price)
		if errors.Is(err, pgx.ErrNoRows) {
			return Receipt{}, apperr.NotFound("product %d not found", it.ProductID)
		}
		if err != nil {
			return Receipt{}, apperr.Storage("read product price", err)
		}

		line := price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if _, err := tx.Exec(ctx, `
			INSERT INTO OrderItems (OrderID, ProductID, Quantity, ItemPrice)
			VALUES ($1, $2, $3, $4)`,
			rc.OrderID, it.ProductID, it.Quantity, line,
		); err != nil {
			return Receipt{}, apperr.Storage("insert order item", err)
		}
		rc.TotalAmount = rc.TotalAmount.Add(line)
		rc.Items = append(rc.Items, ItemPrice{ProductID: it.ProductID, Quantity: it.Quantity, ItemPrice: line})
	}

	ct, err := tx.Exec(ctx, `UPDATE Orders SET TotalAmount = $1 WHERE OrderID = $2`, rc.TotalAmount, rc.OrderID)
	if err != nil {
		return Receipt{}, apperr.Storage("update order total", err)
	}
	if ct.RowsAffected() != 1 {
		return Receipt{}, apperr.Storage("update order total", fmt.Errorf("order %d: %d rows updated", rc.OrderID, ct.RowsAffected()))
	}
	return rc, nil
}

// GetOrderDetails returns the order with its customer and items. An order
// whose customer cannot be resolved is reported as not found.
func (r *Repo) GetOrderDetails(ctx context.Context, orderID int64) (OrderDetails, bool, error) {
	var (
		d      OrderDetails
		status string
	)
	err := r.DB.QueryRow(ctx, `
		SELECT o.OrderID, o.CustomerID, o.OrderDate, o.TotalAmount, o.OrderStatus,
		       c.CustomerID, c.FirstName, c.LastName, c.Email
		FROM Orders o
		JOIN Customers c ON o.CustomerID = c.CustomerID
		WHERE o.OrderID = $1`, orderID,
	).Scan(&d.ID, &d.CustomerID, &d.OrderDate, &d.TotalAmount, &status,
		&d.Customer.ID, &d.Customer.FirstName, &d.Customer.LastName, &d.Customer.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return OrderDetails{}, false, nil
	}
	if err != nil {
		return OrderDetails{}, false, apperr.Storage("get order", err)
	}
	d.Status = Status(status)

	rows, err := r.DB.Query(ctx, `
		SELECT oi.ProductID, p.ProductName, oi.Quantity, oi.ItemPrice
		FROM OrderItems oi
		JOIN Products p ON oi.ProductID = p.ProductID
		WHERE oi.OrderID = $1
		ORDER BY oi.OrderItemID`, orderID)
	if err != nil {
		return OrderDetails{}, false, apperr.Storage("get order items", err)
	}
	defer rows.Close()

	d.Items = []LineItem{}
	for rows.Next() {
		var li LineItem
		if err := rows.Scan(&li.ProductID, &li.ProductName, &li.Quantity, &li.ItemPrice); err != nil {
			return OrderDetails{}, false, apperr.Storage("get order items", err)
		}
		d.Items = append(d.Items, li)
	}
	if err := rows.Err(); err != nil {
		return OrderDetails{}, false, apperr.Storage("get order items", err)
	}
	return d, true, nil
}

func (r *Repo) GetOrderStatus(ctx context.Context, orderID int64) (Status, bool, error) {
	var s string
	err := r.DB.QueryRow(ctx, `SELECT OrderStatus FROM Orders WHERE OrderID = $1`, orderID).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperr.Storage("get order status", err)
	}
	if !Status(s).Valid() {
		return "", false, apperr.Storage("get order status", fmt.Errorf("order %d: unknown status %q", orderID, s))
	}
	return Status(s), true, nil
}

func (r *Repo) CustomerOrders(ctx context.Context, customerID int64) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT OrderID, CustomerID, OrderDate, TotalAmount, OrderStatus
		FROM Orders WHERE CustomerID = $1 ORDER BY OrderID`, customerID)
	if err != nil {
		return nil, apperr.Storage("list customer orders", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var (
			o      Order
			status string
		)
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &status); err != nil {
			return nil, apperr.Storage("list customer orders", err)
		}
		o.Status = Status(status)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list customer orders", err)
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context, kind EntityKind) (int64, error) {
	q, ok := countQueries[kind]
	if !ok {
		return 0, apperr.Validation("unknown entity kind %q, use customers, orders or products", string(kind))
	}
	var n int64
	if err := r.DB.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, apperr.Storage("count "+string(kind), err)
	}
	return n, nil
}
