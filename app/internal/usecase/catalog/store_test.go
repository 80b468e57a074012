package catalog

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domcategory "example.com/beadwork-storefront/app/internal/domain/category"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

type fakeSeedSource struct {
	seed  *Seed
	err   error
	calls atomic.Int32
}

func (f *fakeSeedSource) Load(ctx context.Context) (*Seed, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.seed, nil
}

func seedCategories() []*domcategory.Category {
	return []*domcategory.Category{
		{ID: "necklaces", Name: "Necklaces", Description: "Statement collars"},
		{ID: "bracelets", Name: "Bracelets", Description: "Beaded bands"},
		{ID: "accessories", Name: "Accessories", Description: "Earrings and anklets"},
		{ID: "ceremonial", Name: "Ceremonial", Description: "Crowns and regalia"},
	}
}

func seedProducts(n int) []*domproduct.Product {
	out := make([]*domproduct.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &domproduct.Product{
			ID:       strconv.Itoa(i),
			Name:     "Seed " + strconv.Itoa(i),
			Price:    decimal.NewFromInt(int64(10 * i)),
			Category: "necklaces",
			Colors:   []string{"red"},
			InStock:  true,
		})
	}
	return out
}

func newTestStore(source SeedSource, opts Options) *Store {
	return NewStore(source, NewGenerator(3), opts, nil)
}

func TestStore_CombinesSeedAndGenerated(t *testing.T) {
	source := &fakeSeedSource{seed: &Seed{Products: seedProducts(10), Categories: seedCategories()}}
	store := newTestStore(source, Options{GenerateStart: 11, GenerateCount: 95})

	products, err := store.Products().List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 105)
	require.Equal(t, "1", products[0].ID)
	require.Equal(t, "11", products[10].ID)
	require.Equal(t, "105", products[104].ID)

	p, err := store.Products().GetByID(context.Background(), "50")
	require.NoError(t, err)
	require.Equal(t, "50", p.ID)

	categories, err := store.Categories().List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)
}

func TestStore_ReservesSeedIDSpace(t *testing.T) {
	source := &fakeSeedSource{seed: &Seed{Products: seedProducts(10), Categories: seedCategories()}}
	store := newTestStore(source, Options{GenerateStart: 5, GenerateCount: 3})

	products, err := store.Products().List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 13)
	require.Equal(t, "11", products[10].ID)
	require.Equal(t, "13", products[12].ID)
}

func TestStore_LoadsOnce(t *testing.T) {
	source := &fakeSeedSource{seed: &Seed{Products: seedProducts(2), Categories: seedCategories()}}
	store := newTestStore(source, Options{GenerateStart: 11, GenerateCount: 5})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Products().List(context.Background())
		}()
	}
	wg.Wait()

	first, err := store.Products().List(context.Background())
	require.NoError(t, err)
	second, err := store.Products().List(context.Background())
	require.NoError(t, err)

	require.Equal(t, int32(1), source.calls.Load())
	for i := range first {
		require.Same(t, first[i], second[i])
	}
}

func TestStore_RetriesAfterFailedLoad(t *testing.T) {
	boom := errors.New("seed unavailable")
	source := &fakeSeedSource{err: boom}
	store := newTestStore(source, Options{GenerateStart: 11, GenerateCount: 1})

	err := store.Load(context.Background())
	require.ErrorIs(t, err, boom)

	source.err = nil
	source.seed = &Seed{Products: seedProducts(1), Categories: seedCategories()}
	require.NoError(t, store.Load(context.Background()))
	require.Equal(t, int32(2), source.calls.Load())
}

func TestStore_RejectsDuplicateSeedIDs(t *testing.T) {
	products := seedProducts(2)
	products[1].ID = "1"
	source := &fakeSeedSource{seed: &Seed{Products: products, Categories: seedCategories()}}
	store := newTestStore(source, Options{})

	err := store.Load(context.Background())

	require.ErrorIs(t, err, ErrDuplicateProductID)
}

func TestStore_RejectsInvalidSeed(t *testing.T) {
	products := seedProducts(1)
	products[0].Colors = nil
	source := &fakeSeedSource{seed: &Seed{Products: products, Categories: seedCategories()}}
	store := newTestStore(source, Options{})

	err := store.Load(context.Background())

	require.ErrorIs(t, err, ErrInvalidSeed)
}

func TestStore_NotFound(t *testing.T) {
	source := &fakeSeedSource{seed: &Seed{Products: seedProducts(1), Categories: seedCategories()}}
	store := newTestStore(source, Options{})

	_, err := store.Products().GetByID(context.Background(), "999")
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)

	_, err = store.Categories().GetByID(context.Background(), "rings")
	require.ErrorIs(t, err, domcategory.ErrCategoryNotFound)
}

func TestStore_FingerprintIsStable(t *testing.T) {
	source := &fakeSeedSource{seed: &Seed{Products: seedProducts(3), Categories: seedCategories()}}
	store := newTestStore(source, Options{GenerateStart: 4, GenerateCount: 4})

	a, err := store.Fingerprint(context.Background())
	require.NoError(t, err)
	b, err := store.Fingerprint(context.Background())
	require.NoError(t, err)

	require.Len(t, a, 64)
	require.Equal(t, a, b)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	source := &fakeSeedSource{seed: &Seed{Products: seedProducts(3), Categories: seedCategories()}}
	store := newTestStore(source, Options{})

	products, err := store.Products().List(context.Background())
	require.NoError(t, err)
	products[0] = nil

	again, err := store.Products().List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, again[0])
}
