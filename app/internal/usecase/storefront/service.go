package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	domsession "example.com/beadwork-storefront/app/internal/domain/session"
	domview "example.com/beadwork-storefront/app/internal/domain/view"
	ucproduct "example.com/beadwork-storefront/app/internal/usecase/product"
)

// FeaturedLimit is the size of the featured section on the home view.
const FeaturedLimit = 4

const (
	titleSearch   = "Search Results"
	titleAll      = "All Products"
	titleFallback = "Products"
)

type ProductQuerier interface {
	List(ctx context.Context, filter domproduct.ListFilter) (*ucproduct.ListResult, error)
	Featured(ctx context.Context, limit int) ([]*domproduct.Product, error)
}

type CategoryReader interface {
	GetByID(ctx context.Context, id string) (*domcategory.Category, error)
	List(ctx context.Context) ([]*domcategory.Category, error)
}

type TokenService interface {
	GenerateToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
}

type StartResult struct {
	Session *domsession.Session
	Token   string
}

type FilterInput struct {
	PriceBand string
	Sort      string
	Category  string
}

type HomeSection struct {
	Categories []*domcategory.Category
	Featured   []*domproduct.Product
}

type ListingSection struct {
	Title       string
	Description string
	Query       string
	Products    []*domproduct.Product
	Shown       int
	Total       int

	HasActiveFilters bool
}

// Page is everything a client needs to draw the current view. Home is set
// on the home view; Listing is set whenever the listing is visible, which
// includes the home view while a query is pending.
type Page struct {
	State     domview.State
	Home      *HomeSection
	Listing   *ListingSection
	CartCount int64
}

// Service drives the per-session view state machine and composes pages.
type Service struct {
	sessions   domsession.Repository
	products   ProductQuerier
	categories CategoryReader
	tokens     TokenService

	now   func() time.Time
	newID func() string
}

func NewService(sessions domsession.Repository, products ProductQuerier, categories CategoryReader, tokens TokenService) *Service {
	return &Service{
		sessions:   sessions,
		products:   products,
		categories: categories,
		tokens:     tokens,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *Service) StartSession(ctx context.Context) (*StartResult, error) {
	sess := domsession.New(s.newID(), s.now())
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(sess.ID)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &StartResult{Session: sess, Token: token}, nil
}

// Authenticate resolves a bearer token to its live session.
func (s *Service) Authenticate(ctx context.Context, token string) (*domsession.Session, error) {
	id, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(ctx, id)
}

// SelectCategory opens the listing for categoryID. "all" or an empty id
// opens the full listing.
func (s *Service) SelectCategory(ctx context.Context, sessionID, categoryID string) (*domview.State, error) {
	id, err := s.resolveCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.updateView(ctx, sessionID, func(v *domview.State) {
		v.SelectCategory(id)
	})
}

func (s *Service) Search(ctx context.Context, sessionID, query string) (*domview.State, error) {
	return s.updateView(ctx, sessionID, func(v *domview.State) {
		v.Search(query)
	})
}

func (s *Service) ReturnHome(ctx context.Context, sessionID string) (*domview.State, error) {
	return s.updateView(ctx, sessionID, func(v *domview.State) {
		v.ReturnHome()
	})
}

func (s *Service) SetFilters(ctx context.Context, sessionID string, in FilterInput) (*domview.State, error) {
	band, err := domproduct.ParsePriceBand(in.PriceBand)
	if err != nil {
		return nil, err
	}
	sort, err := domproduct.ParseSortKey(in.Sort)
	if err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	return s.updateView(ctx, sessionID, func(v *domview.State) {
		v.SetFilters(band, sort, categoryID)
	})
}

func (s *Service) ClearFilters(ctx context.Context, sessionID string) (*domview.State, error) {
	return s.updateView(ctx, sessionID, func(v *domview.State) {
		v.ClearFilters()
	})
}

func (s *Service) Page(ctx context.Context, sessionID string) (*Page, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	page := &Page{
		State:     sess.View,
		CartCount: sess.Cart.Totals().TotalItems,
	}

	if sess.View.View == domview.ViewHome {
		if page.Home, err = s.home(ctx); err != nil {
			return nil, err
		}
	}
	if sess.View.ShowsListing() {
		if page.Listing, err = s.listing(ctx, sess.View); err != nil {
			return nil, err
		}
	}
	return page, nil
}

func (s *Service) home(ctx context.Context) (*HomeSection, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	featured, err := s.products.Featured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	return &HomeSection{Categories: categories, Featured: featured}, nil
}

func (s *Service) listing(ctx context.Context, state domview.State) (*ListingSection, error) {
	result, err := s.products.List(ctx, state.Filter())
	if err != nil {
		return nil, err
	}

	section := &ListingSection{
		Query:            state.Query,
		Products:         result.Products,
		Shown:            len(result.Products),
		Total:            result.Total,
		HasActiveFilters: state.HasActiveFilters(),
	}

	switch {
	case state.Category != "":
		c, err := s.categories.GetByID(ctx, state.Category)
		switch {
		case err == nil:
			section.Title = c.Name
			section.Description = c.Description
		case errors.Is(err, domcategory.ErrCategoryNotFound):
			section.Title = titleFallback
		default:
			return nil, err
		}
	case strings.TrimSpace(state.Query) != "":
		section.Title = titleSearch
	default:
		section.Title = titleAll
	}
	return section, nil
}

func (s *Service) updateView(ctx context.Context, sessionID string, fn func(v *domview.State)) (*domview.State, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *domsession.Session) error {
		fn(&sess.View)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sess.View, nil
}

// resolveCategory maps "all" and "" to no category and checks that any
// other id exists.
func (s *Service) resolveCategory(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == domproduct.AllValue {
		return "", nil
	}
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}
