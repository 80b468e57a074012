package catalog

import (
	"context"
	"errors"
	"fmt"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

var (
	ErrInvalidSeed        = errors.New("invalid catalog seed")
	ErrDuplicateProductID = errors.New("duplicate product id")
)

// Seed is the curated part of the catalog, loaded once from a static source.
type Seed struct {
	Products   []*domproduct.Product
	Categories []*domcategory.Category
}

type SeedSource interface {
	Load(ctx context.Context) (*Seed, error)
}

func (s *Seed) Validate() error {
	categories := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("%w: category id and name are required", ErrInvalidSeed)
		}
		if categories[c.ID] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidSeed, c.ID)
		}
		categories[c.ID] = true
	}

	products := make(map[string]bool, len(s.Products))
	for _, p := range s.Products {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("%w: product id and name are required", ErrInvalidSeed)
		}
		if products[p.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateProductID, p.ID)
		}
		products[p.ID] = true

		if p.Price.IsNegative() {
			return fmt.Errorf("%w: product %q has a negative price", ErrInvalidSeed, p.ID)
		}
		if len(p.Colors) == 0 {
			return fmt.Errorf("%w: product %q has no colors", ErrInvalidSeed, p.ID)
		}
	}
	return nil
}
