package product

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply returns the products passing every active filter in f, ordered by
// f.Sort. The input slice is left untouched. All sorts are stable, so
// products comparing equal keep their input order; an empty or unknown sort
// key keeps the input order entirely.
func Apply(products []*Product, f ListFilter) []*Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesCategory(p, f.Category) {
			continue
		}
		if !f.PriceBand.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.Sort)
	return out
}

// Featured returns up to limit featured products in catalog order.
// A non-positive limit returns every featured product.
func Featured(products []*Product, limit int) []*Product {
	out := make([]*Product, 0)
	for _, p := range products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CountInCategory counts the products in category. An empty or "all"
// category counts every product.
func CountInCategory(products []*Product, category string) int {
	n := 0
	for _, p := range products {
		if matchesCategory(p, category) {
			n++
		}
	}
	return n
}

// query must already be lower-cased and trimmed.
func matchesQuery(p *Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func matchesCategory(p *Product, category string) bool {
	if category == "" || category == AllValue {
		return true
	}
	return p.Category == category
}

func sortProducts(ps []*Product, key SortKey) {
	switch key {
	case SortFeatured:
		slices.SortStableFunc(ps, func(a, b *Product) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		})
	case SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b *Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b *Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortName:
		// Collators keep scratch buffers, so each sort gets its own.
		c := collate.New(language.English)
		slices.SortStableFunc(ps, func(a, b *Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
}
