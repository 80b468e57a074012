package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	Featured    bool
	Colors      []string
	InStock     bool
}

// AllValue disables the category or price band filter it is assigned to.
const AllValue = "all"

type PriceBand string

const (
	PriceBandAll     PriceBand = AllValue
	PriceBandUnder50 PriceBand = "under50"
	PriceBand50To100 PriceBand = "50to100"
	PriceBandOver100 PriceBand = "over100"
)

var (
	fifty   = decimal.NewFromInt(50)
	hundred = decimal.NewFromInt(100)
)

func (b PriceBand) IsValid() bool {
	switch b {
	case PriceBandAll, PriceBandUnder50, PriceBand50To100, PriceBandOver100:
		return true
	default:
		return false
	}
}

// Contains reports whether price falls inside the band. The "all" band and
// unrecognised bands contain every price.
func (b PriceBand) Contains(price decimal.Decimal) bool {
	switch b {
	case PriceBandUnder50:
		return price.LessThan(fifty)
	case PriceBand50To100:
		return price.GreaterThanOrEqual(fifty) && price.LessThan(hundred)
	case PriceBandOver100:
		return price.GreaterThanOrEqual(hundred)
	default:
		return true
	}
}

// ParsePriceBand accepts the empty string as "all".
func ParsePriceBand(s string) (PriceBand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceBandAll, nil
	}
	b := PriceBand(s)
	if !b.IsValid() {
		return "", ErrInvalidPriceBand
	}
	return b, nil
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortName      SortKey = "name"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortName:
		return true
	default:
		return false
	}
}

// ParseSortKey accepts the empty string as the default "featured" key.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortFeatured, nil
	}
	k := SortKey(s)
	if !k.IsValid() {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

type ListFilter struct {
	Query     string
	Category  string
	PriceBand PriceBand
	Sort      SortKey
}
