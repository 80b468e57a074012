package view

import (
	"strings"

	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

type View string

const (
	ViewHome    View = "home"
	ViewListing View = "listing"
)

// State is the selection state of one storefront session. The zero value is
// not ready for use; start from NewState.
type State struct {
	View      View
	Category  string
	Query     string
	PriceBand domproduct.PriceBand
	Sort      domproduct.SortKey
}

func NewState() State {
	return State{
		View:      ViewHome,
		PriceBand: domproduct.PriceBandAll,
		Sort:      domproduct.SortFeatured,
	}
}

// SelectCategory filters the listing by categoryID and drops any query.
func (s *State) SelectCategory(categoryID string) {
	s.Category = categoryID
	s.Query = ""
	s.View = ViewListing
}

// Search records query. A query with visible characters replaces the
// category filter and opens the listing; a blank one only clears the text.
func (s *State) Search(query string) {
	s.Query = query
	if strings.TrimSpace(query) == "" {
		return
	}
	s.Category = ""
	s.View = ViewListing
}

func (s *State) ReturnHome() {
	s.View = ViewHome
	s.Category = ""
	s.Query = ""
}

// SetFilters updates the listing controls without changing the view.
func (s *State) SetFilters(band domproduct.PriceBand, sort domproduct.SortKey, categoryID string) {
	s.PriceBand = band
	s.Sort = sort
	s.Category = categoryID
}

func (s *State) ClearFilters() {
	s.PriceBand = domproduct.PriceBandAll
	s.Sort = domproduct.SortFeatured
	s.Category = ""
}

func (s State) HasActiveFilters() bool {
	return s.Category != "" ||
		s.PriceBand != domproduct.PriceBandAll ||
		s.Sort != domproduct.SortFeatured
}

// ShowsListing reports whether the product listing is visible. A pending
// query keeps it visible even from the home view.
func (s State) ShowsListing() bool {
	return s.View == ViewListing || strings.TrimSpace(s.Query) != ""
}

func (s State) Filter() domproduct.ListFilter {
	return domproduct.ListFilter{
		Query:     s.Query,
		Category:  s.Category,
		PriceBand: s.PriceBand,
		Sort:      s.Sort,
	}
}
