package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

func TestNewState_StartsHome(t *testing.T) {
	s := NewState()

	require.Equal(t, ViewHome, s.View)
	require.False(t, s.HasActiveFilters())
	require.False(t, s.ShowsListing())
	require.Equal(t, domproduct.ListFilter{PriceBand: domproduct.PriceBandAll, Sort: domproduct.SortFeatured}, s.Filter())
}

func TestState_SelectCategoryFromAnyView(t *testing.T) {
	for _, start := range []View{ViewHome, ViewListing} {
		t.Run(string(start), func(t *testing.T) {
			s := NewState()
			s.View = start
			s.Query = "crown"

			s.SelectCategory("ceremonial")

			require.Equal(t, ViewListing, s.View)
			require.Equal(t, "ceremonial", s.Category)
			require.Empty(t, s.Query)
		})
	}
}

func TestState_SearchNonEmptyClearsCategory(t *testing.T) {
	s := NewState()
	s.SelectCategory("bracelets")

	s.Search("necklace")

	require.Equal(t, ViewListing, s.View)
	require.Empty(t, s.Category)
	require.Equal(t, "necklace", s.Query)
}

func TestState_SearchBlankKeepsView(t *testing.T) {
	s := NewState()
	s.Search("   ")
	require.Equal(t, ViewHome, s.View)

	s.SelectCategory("bracelets")
	s.Search("")
	require.Equal(t, ViewListing, s.View)
	require.Equal(t, "bracelets", s.Category)
}

func TestState_ReturnHomeClearsSelection(t *testing.T) {
	s := NewState()
	s.Search("moon")
	s.SetFilters(domproduct.PriceBandUnder50, domproduct.SortName, "accessories")

	s.ReturnHome()

	require.Equal(t, ViewHome, s.View)
	require.Empty(t, s.Category)
	require.Empty(t, s.Query)
	require.Equal(t, domproduct.PriceBandUnder50, s.PriceBand)
	require.Equal(t, domproduct.SortName, s.Sort)
}

func TestState_FiltersDoNotChangeView(t *testing.T) {
	s := NewState()

	s.SetFilters(domproduct.PriceBandOver100, domproduct.SortPriceDesc, "")

	require.Equal(t, ViewHome, s.View)
	require.True(t, s.HasActiveFilters())

	s.ClearFilters()
	require.False(t, s.HasActiveFilters())
	require.Equal(t, ViewHome, s.View)
}
