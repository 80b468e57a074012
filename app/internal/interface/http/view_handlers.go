package http

import (
	"net/http"

	domview "example.com/beadwork-storefront/app/internal/domain/view"
	storefrontuc "example.com/beadwork-storefront/app/internal/usecase/storefront"
)

type searchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type selectCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
}

type setFiltersRequest struct {
	PriceBand string `json:"price_band"`
	Sort      string `json:"sort"`
	Category  string `json:"category"`
}

func (a *API) handleGetPage(w http.ResponseWriter, r *http.Request) {
	page, err := a.storefrontSvc.Page(r.Context(), getSessionID(r.Context()))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapPage(page))
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	state, err := a.storefrontSvc.Search(r.Context(), getSessionID(r.Context()), req.Query)
	a.respondState(w, r, state, err)
}

func (a *API) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	var req selectCategoryRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	state, err := a.storefrontSvc.SelectCategory(r.Context(), getSessionID(r.Context()), req.CategoryID)
	a.respondState(w, r, state, err)
}

func (a *API) handleReturnHome(w http.ResponseWriter, r *http.Request) {
	state, err := a.storefrontSvc.ReturnHome(r.Context(), getSessionID(r.Context()))
	a.respondState(w, r, state, err)
}

func (a *API) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req setFiltersRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	state, err := a.storefrontSvc.SetFilters(r.Context(), getSessionID(r.Context()), storefrontuc.FilterInput{
		PriceBand: req.PriceBand,
		Sort:      req.Sort,
		Category:  req.Category,
	})
	a.respondState(w, r, state, err)
}

func (a *API) handleClearFilters(w http.ResponseWriter, r *http.Request) {
	state, err := a.storefrontSvc.ClearFilters(r.Context(), getSessionID(r.Context()))
	a.respondState(w, r, state, err)
}

func (a *API) respondState(w http.ResponseWriter, r *http.Request, state *domview.State, err error) {
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapState(*state))
}
