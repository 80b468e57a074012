package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcart "example.com/beadwork-storefront/app/internal/domain/cart"
	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domorder "example.com/beadwork-storefront/app/internal/domain/order"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	domsession "example.com/beadwork-storefront/app/internal/domain/session"
	domview "example.com/beadwork-storefront/app/internal/domain/view"
	"example.com/beadwork-storefront/app/internal/infra/security"
	cartuc "example.com/beadwork-storefront/app/internal/usecase/cart"
	categoryuc "example.com/beadwork-storefront/app/internal/usecase/category"
	checkoutuc "example.com/beadwork-storefront/app/internal/usecase/checkout"
	productuc "example.com/beadwork-storefront/app/internal/usecase/product"
	storefrontuc "example.com/beadwork-storefront/app/internal/usecase/storefront"
)

// Fingerprinter identifies the current catalog content for ETags.
type Fingerprinter interface {
	Fingerprint(ctx context.Context) (string, error)
}

type API struct {
	storefrontSvc *storefrontuc.Service
	categorySvc   *categoryuc.Service
	productSvc    *productuc.Service
	cartSvc       *cartuc.Service
	checkoutSvc   *checkoutuc.Service
	catalog       Fingerprinter
	validator     *validator.Validate
	logger        *zap.Logger
}

type Dependencies struct {
	StorefrontService *storefrontuc.Service
	CategoryService   *categoryuc.Service
	ProductService    *productuc.Service
	CartService       *cartuc.Service
	CheckoutService   *checkoutuc.Service
	Catalog           Fingerprinter
	Logger            *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		storefrontSvc: deps.StorefrontService,
		categorySvc:   deps.CategoryService,
		productSvc:    deps.ProductService,
		cartSvc:       deps.CartService,
		checkoutSvc:   deps.CheckoutService,
		catalog:       deps.Catalog,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", a.handleStartSession)

		r.Get("/categories", a.handleListCategories)
		r.Get("/categories/{id}", a.handleGetCategory)
		r.Get("/products", a.handleListProducts)
		r.Get("/products/featured", a.handleFeaturedProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		r.Group(func(sr chi.Router) {
			sr.Use(a.sessionMiddleware)

			sr.Get("/me/page", a.handleGetPage)
			sr.Route("/me/view", func(vr chi.Router) {
				vr.Post("/search", a.handleSearch)
				vr.Post("/category", a.handleSelectCategory)
				vr.Post("/home", a.handleReturnHome)
				vr.Put("/filters", a.handleSetFilters)
				vr.Delete("/filters", a.handleClearFilters)
			})

			sr.Get("/me/cart", a.handleGetCart)
			sr.Post("/me/cart/items", a.handleAddCartItem)
			sr.Put("/me/cart/items/{id}", a.handleSetCartItemQuantity)
			sr.Delete("/me/cart/items/{id}", a.handleRemoveCartItem)
			sr.Post("/me/checkout", a.handleCheckout)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string  `json:"error"`
	Details any     `json:"details,omitempty"`
	Notice  *notice `json:"notice,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
	}
}

func mapCategories(cs []*domcategory.Category) []map[string]any {
	out := make([]map[string]any, 0, len(cs))
	for _, c := range cs {
		out = append(out, mapCategory(c))
	}
	return out
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.StringFixed(2),
		"category":    p.Category,
		"image":       p.Image,
		"featured":    p.Featured,
		"colors":      p.Colors,
		"in_stock":    p.InStock,
	}
}

func mapProducts(ps []*domproduct.Product) []map[string]any {
	out := make([]map[string]any, 0, len(ps))
	for _, p := range ps {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapLine(l domcart.Line) map[string]any {
	return map[string]any{
		"product_id": l.ProductID,
		"name":       l.Name,
		"price":      l.Price.StringFixed(2),
		"image":      l.Image,
		"category":   l.Category,
		"quantity":   l.Quantity,
		"line_total": l.Total().StringFixed(2),
	}
}

func mapLines(lines []domcart.Line) []map[string]any {
	out := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		out = append(out, mapLine(l))
	}
	return out
}

func mapTotals(t domcart.Totals) map[string]any {
	return map[string]any{
		"total_items":   t.TotalItems,
		"subtotal":      t.Subtotal.StringFixed(2),
		"shipping":      t.Shipping.StringFixed(2),
		"total":         t.Total.StringFixed(2),
		"free_shipping": t.FreeShipping,
	}
}

func mapCart(v *cartuc.View) map[string]any {
	return map[string]any{
		"items":  mapLines(v.Lines),
		"totals": mapTotals(v.Totals),
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	return map[string]any{
		"id":         o.ID,
		"session_id": o.SessionID,
		"items":      mapLines(o.Lines),
		"totals":     mapTotals(o.Totals),
		"created_at": o.CreatedAt,
	}
}

func mapState(s domview.State) map[string]any {
	return map[string]any{
		"view":               s.View,
		"category":           s.Category,
		"query":              s.Query,
		"price_band":         s.PriceBand,
		"sort":               s.Sort,
		"has_active_filters": s.HasActiveFilters(),
		"shows_listing":      s.ShowsListing(),
	}
}

func mapPage(p *storefrontuc.Page) map[string]any {
	resp := map[string]any{
		"state":      mapState(p.State),
		"cart_count": p.CartCount,
	}
	if p.Home != nil {
		resp["home"] = map[string]any{
			"categories": mapCategories(p.Home.Categories),
			"featured":   mapProducts(p.Home.Featured),
		}
	}
	if p.Listing != nil {
		resp["listing"] = map[string]any{
			"title":              p.Listing.Title,
			"description":        p.Listing.Description,
			"query":              p.Listing.Query,
			"products":           mapProducts(p.Listing.Products),
			"shown":              p.Listing.Shown,
			"total":              p.Listing.Total,
			"has_active_filters": p.Listing.HasActiveFilters,
		}
	}
	return resp
}

func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domproduct.ErrOutOfStock):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Notice: noticeOutOfStock()})
	case errors.Is(err, domproduct.ErrInvalidPriceBand),
		errors.Is(err, domproduct.ErrInvalidSortKey),
		errors.Is(err, domcart.ErrQuantityLimit),
		errors.Is(err, domorder.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domsession.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, security.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
	case errors.Is(err, domorder.ErrHandoffFailed):
		a.logger.Error("checkout handoff failed", zap.Error(err), zap.String("request_id", chimw.GetReqID(r.Context())))
		respondError(w, http.StatusBadGateway, domorder.ErrHandoffFailed)
	default:
		a.logger.Error("request failed", zap.Error(err), zap.String("request_id", chimw.GetReqID(r.Context())))
		respondError(w, http.StatusInternalServerError, err)
	}
}
