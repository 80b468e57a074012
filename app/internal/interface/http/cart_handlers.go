package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

// Quantity is a pointer so that an explicit 0, which removes the line, can
// be told apart from a missing field. The max matches cart.MaxQuantity.
type setQuantityRequest struct {
	Quantity *int64 `json:"quantity" validate:"required,max=999"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	view, err := a.cartSvc.GetCart(r.Context(), getSessionID(r.Context()))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(view))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.cartSvc.AddToCart(r.Context(), getSessionID(r.Context()), req.ProductID)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	status, n := http.StatusOK, noticeIncreased(result.Line.Name)
	if result.Created {
		status, n = http.StatusCreated, noticeAdded(result.Line.Name)
	}
	writeJSON(w, status, map[string]any{
		"item":   mapLine(result.Line),
		"cart":   mapCart(result.Cart),
		"notice": n,
	})
}

func (a *API) handleSetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	view, err := a.cartSvc.SetQuantity(r.Context(), getSessionID(r.Context()), chi.URLParam(r, "id"), *req.Quantity)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	resp := map[string]any{"cart": mapCart(view)}
	if *req.Quantity <= 0 {
		resp["notice"] = noticeRemoved()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	view, err := a.cartSvc.RemoveItem(r.Context(), getSessionID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cart":   mapCart(view),
		"notice": noticeRemoved(),
	})
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	order, err := a.checkoutSvc.Checkout(r.Context(), getSessionID(r.Context()))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"order":  mapOrder(order),
		"notice": noticeCheckout(),
	})
}
