package catalog

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

type Options struct {
	GenerateStart int
	GenerateCount int
}

// Store holds the session catalog: the seed plus generated products and
// the category list. It is built on first use and never changes afterwards.
// A failed build is not cached; the next caller tries again.
type Store struct {
	source SeedSource
	gen    *Generator
	opts   Options
	logger *zap.Logger

	group    singleflight.Group
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	products     []*domproduct.Product
	productByID  map[string]*domproduct.Product
	categories   []*domcategory.Category
	categoryByID map[string]*domcategory.Category
	fingerprint  string
}

func NewStore(source SeedSource, gen *Generator, opts Options, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		source: source,
		gen:    gen,
		opts:   opts,
		logger: logger,
	}
}

// Load builds the catalog if that has not happened yet.
func (s *Store) Load(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

// Fingerprint is a hex blake2b-256 digest of the loaded catalog.
func (s *Store) Fingerprint(ctx context.Context) (string, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return snap.fingerprint, nil
}

func (s *Store) Products() domproduct.Repository {
	return productView{store: s}
}

func (s *Store) Categories() domcategory.Repository {
	return categoryView{store: s}
}

func (s *Store) load(ctx context.Context) (*snapshot, error) {
	if snap := s.snapshot.Load(); snap != nil {
		return snap, nil
	}

	v, err, _ := s.group.Do("catalog", func() (any, error) {
		if snap := s.snapshot.Load(); snap != nil {
			return snap, nil
		}
		snap, err := s.build(ctx)
		if err != nil {
			return nil, err
		}
		s.snapshot.Store(snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*snapshot), nil
}

func (s *Store) build(ctx context.Context) (*snapshot, error) {
	seed, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	start := s.opts.GenerateStart
	if reserved := maxNumericID(seed.Products) + 1; start < reserved {
		s.logger.Warn("generator start id overlaps the seed catalog",
			zap.Int("configured", start),
			zap.Int("using", reserved))
		start = reserved
	}
	generated := s.gen.Generate(start, s.opts.GenerateCount)

	snap := &snapshot{
		products:     make([]*domproduct.Product, 0, len(seed.Products)+len(generated)),
		productByID:  make(map[string]*domproduct.Product, len(seed.Products)+len(generated)),
		categories:   seed.Categories,
		categoryByID: make(map[string]*domcategory.Category, len(seed.Categories)),
	}
	for _, c := range seed.Categories {
		snap.categoryByID[c.ID] = c
	}

	orphans := 0
	for _, p := range slices.Concat(seed.Products, generated) {
		if _, dup := snap.productByID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProductID, p.ID)
		}
		if _, ok := snap.categoryByID[p.Category]; !ok {
			orphans++
		}
		snap.products = append(snap.products, p)
		snap.productByID[p.ID] = p
	}
	if orphans > 0 {
		s.logger.Warn("products reference unknown categories", zap.Int("count", orphans))
	}

	snap.fingerprint, err = fingerprint(snap)
	if err != nil {
		return nil, err
	}

	s.logger.Info("catalog loaded",
		zap.Int("seed_products", len(seed.Products)),
		zap.Int("generated_products", len(generated)),
		zap.Int("categories", len(seed.Categories)),
		zap.Int("generate_start", start))
	return snap, nil
}

func maxNumericID(products []*domproduct.Product) int {
	highest := 0
	for _, p := range products {
		if n, err := strconv.Atoi(p.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

func fingerprint(snap *snapshot) (string, error) {
	payload, err := json.Marshal(struct {
		Products   []*domproduct.Product
		Categories []*domcategory.Category
	}{snap.products, snap.categories})
	if err != nil {
		return "", fmt.Errorf("encode catalog: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

type productView struct {
	store *Store
}

func (v productView) List(ctx context.Context) ([]*domproduct.Product, error) {
	snap, err := v.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domproduct.Product, len(snap.products))
	copy(out, snap.products)
	return out, nil
}

func (v productView) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	snap, err := v.store.load(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := snap.productByID[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

type categoryView struct {
	store *Store
}

func (v categoryView) List(ctx context.Context) ([]*domcategory.Category, error) {
	snap, err := v.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domcategory.Category, len(snap.categories))
	copy(out, snap.categories)
	return out, nil
}

func (v categoryView) GetByID(ctx context.Context, id string) (*domcategory.Category, error) {
	snap, err := v.store.load(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := snap.categoryByID[id]
	if !ok {
		return nil, domcategory.ErrCategoryNotFound
	}
	return c, nil
}
