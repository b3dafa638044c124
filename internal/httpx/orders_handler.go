package httpx

import (
	"context"
	"net/http"

	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/ariefcatur/simple-shop/internal/payment"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, customerID int64, items []orders.ItemInput) (orders.Receipt, error)
}

type OrderReader interface {
	GetOrderDetails(ctx context.Context, orderID int64) (orders.OrderDetails, bool, error)
	GetOrderStatus(ctx context.Context, orderID int64) (orders.Status, bool, error)
	Count(ctx context.Context, kind orders.EntityKind) (int64, error)
}

type StatusCache interface {
	Get(ctx context.Context, orderID int64) (orders.Status, bool, error)
	Set(ctx context.Context, orderID int64, s orders.Status) error
}

type PaymentQuoter interface {
	Quote(ctx context.Context, orderID int64) (payment.Quote, error)
}

type OrdersHandler struct {
	Service  OrderCreator
	Reader   OrderReader
	Cache    StatusCache // optional
	Payments PaymentQuoter
}

type CreateOrderReq struct {
	CustomerID int64              `json:"customer_id"`
	Items      []orders.ItemInput `json:"items"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{id}", h.getOrder)
	r.Get("/orders/{id}/status", h.getStatus)
	r.Get("/orders/{id}/payment-quote", h.quote)
	r.Get("/stats/{kind}", h.count)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rc, err := h.Service.CreateOrder(r.Context(), req.CustomerID, req.Items)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), rc.OrderID, orders.StatusPending); err != nil {
			logger.Warn(r.Context(), "cache order status", zap.Int64("order_id", rc.OrderID), zap.Error(err))
		}
	}
	writeJSON(w, http.StatusCreated, rc)
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, ok, err := h.Reader.GetOrderDetails(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		notFound(w, "order")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *OrdersHandler) getStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	// 1) cache
	if h.Cache != nil {
		s, ok, err := h.Cache.Get(r.Context(), id)
		if err == nil && ok {
			writeJSON(w, http.StatusOK, map[string]any{"order_id": id, "status": s})
			return
		}
		logger.Debug(r.Context(), "order status cache miss", zap.Int64("order_id", id), zap.Error(err))
	}

	// 2) database
	s, ok, err := h.Reader.GetOrderStatus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		notFound(w, "order")
		return
	}
	if h.Cache != nil {
		_ = h.Cache.Set(r.Context(), id, s)
	}
	writeJSON(w, http.StatusOK, map[string]any{"order_id": id, "status": s})
}

func (h *OrdersHandler) quote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q, err := h.Payments.Quote(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *OrdersHandler) count(w http.ResponseWriter, r *http.Request) {
	kind := orders.EntityKind(chi.URLParam(r, "kind"))
	n, err := h.Reader.Count(r.Context(), kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "count": n})
}
