package httpx

import (
	"context"
	"net/http"

	"github.com/ariefcatur/simple-shop/internal/customers"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/go-chi/chi/v5"
)

type CustomerStore interface {
	Create(ctx context.Context, c customers.NewCustomer) (int64, error)
	Get(ctx context.Context, id int64) (customers.Customer, bool, error)
}

type CustomerOrderLister interface {
	CustomerOrders(ctx context.Context, customerID int64) ([]orders.Order, error)
}

type CustomersHandler struct {
	Store  CustomerStore
	Orders CustomerOrderLister
}

func (h *CustomersHandler) Register(r *chi.Mux) {
	r.Post("/customers", h.create)
	r.Get("/customers/{id}", h.get)
	r.Get("/customers/{id}/orders", h.orders)
}

func (h *CustomersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customers.NewCustomer
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := h.Store.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *CustomersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, ok, err := h.Store.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		notFound(w, "customer")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomersHandler) orders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	list, err := h.Orders.CustomerOrders(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
