package httpx

import (
	"context"
	"net/http"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogStore interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, category string) ([]catalog.ProductSummary, error)
	GetProduct(ctx context.Context, id int64) (catalog.Product, bool, error)
	RandomProduct(ctx context.Context) (catalog.Product, bool, error)
	ListReviews(ctx context.Context, productID int64, order catalog.SortOrder) (catalog.ReviewList, error)
	AddProduct(ctx context.Context, p catalog.NewProduct) (int64, error)
}

type CatalogHandler struct {
	Store CatalogStore
}

type reviewsResp struct {
	Reviews catalog.ReviewList `json:"reviews"`
	Count   int                `json:"count"`
	Average *float64           `json:"average"` // null when there are no reviews
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/categories", h.listCategories)
	r.Get("/products", h.listProducts)
	r.Post("/products", h.addProduct)
	r.Get("/products/random", h.randomProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/products/{id}/reviews", h.listReviews)
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Store.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Store.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *CatalogHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.NewProduct
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := h.Store.AddProduct(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *CatalogHandler) randomProduct(w http.ResponseWriter, r *http.Request) {
	p, ok, err := h.Store.RandomProduct(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		notFound(w, "product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, ok, err := h.Store.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		notFound(w, "product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	order, err := catalog.ParseSortOrder(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, apperr.Validation("%v", err))
		return
	}
	reviews, err := h.Store.ListReviews(r.Context(), id, order)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := reviewsResp{Reviews: reviews, Count: len(reviews)}
	if avg, ok := reviews.Average(); ok {
		resp.Average = &avg
	}
	writeJSON(w, http.StatusOK, resp)
}
