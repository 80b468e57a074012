package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	storefrontuc "example.com/beadwork-storefront/app/internal/usecase/storefront"
)

const maxFeaturedLimit = 50

var errInvalidLimit = errors.New("limit must be an integer between 1 and 50")

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	band, err := domproduct.ParsePriceBand(q.Get("price"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	sort, err := domproduct.ParseSortKey(q.Get("sort"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	category := strings.TrimSpace(q.Get("category"))
	if category != "" && category != domproduct.AllValue {
		if _, err := a.categorySvc.GetByID(r.Context(), category); err != nil {
			a.handleDomainError(w, r, err)
			return
		}
	}

	if a.notModified(w, r) {
		return
	}

	result, err := a.productSvc.List(r.Context(), domproduct.ListFilter{
		Query:     q.Get("q"),
		Category:  category,
		PriceBand: band,
		Sort:      sort,
	})
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  mapProducts(result.Products),
		"shown": len(result.Products),
		"total": result.Total,
	})
}

func (a *API) handleFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := storefrontuc.FeaturedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxFeaturedLimit {
			respondError(w, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = n
	}

	if a.notModified(w, r) {
		return
	}

	products, err := a.productSvc.Featured(r.Context(), limit)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapProducts(products)})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// notModified sets the catalog ETag and answers 304 when the client already
// holds the current version. The catalog is immutable once loaded, so the
// tag is valid for every URL it is computed for.
func (a *API) notModified(w http.ResponseWriter, r *http.Request) bool {
	fp, err := a.catalog.Fingerprint(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return true
	}

	etag := `"` + fp + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
