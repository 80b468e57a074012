package product

import (
	"context"
	"strings"
	"sync"

	dom "example.com/beadwork-storefront/app/internal/domain/product"
)

// memoLimit bounds the number of cached listings. The cache is dropped
// wholesale when it fills up.
const memoLimit = 256

type ListResult struct {
	Products []*dom.Product
	// Total counts the products in the filter's category, ignoring every
	// other filter. Without a category it is the catalog size.
	Total int
}

// Service answers catalog queries. Listings are memoized per filter, which
// relies on the repository returning an immutable catalog.
type Service struct {
	repo dom.Repository

	mu   sync.Mutex
	memo map[dom.ListFilter][]*dom.Product
}

func NewService(repo dom.Repository) *Service {
	return &Service{
		repo: repo,
		memo: make(map[dom.ListFilter][]*dom.Product),
	}
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) (*ListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	key := memoKey(filter)
	s.mu.Lock()
	cached, ok := s.memo[key]
	s.mu.Unlock()

	if !ok {
		cached = dom.Apply(all, key)
		s.mu.Lock()
		if len(s.memo) >= memoLimit {
			clear(s.memo)
		}
		s.memo[key] = cached
		s.mu.Unlock()
	}

	products := make([]*dom.Product, len(cached))
	copy(products, cached)
	return &ListResult{Products: products, Total: dom.CountInCategory(all, key.Category)}, nil
}

func (s *Service) Featured(ctx context.Context, limit int) ([]*dom.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dom.Featured(all, limit), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// memoKey folds filters that select the same products onto one key.
func memoKey(f dom.ListFilter) dom.ListFilter {
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	if f.Category == dom.AllValue {
		f.Category = ""
	}
	if f.PriceBand == "" {
		f.PriceBand = dom.PriceBandAll
	}
	return f
}
