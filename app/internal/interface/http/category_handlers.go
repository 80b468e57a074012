package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	if a.notModified(w, r) {
		return
	}

	categories, err := a.categorySvc.List(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapCategories(categories)})
}

func (a *API) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := a.categorySvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategory(c))
}
