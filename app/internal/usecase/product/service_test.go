package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
)

type mockProductRepository struct {
	products  []*domproduct.Product
	listCalls int
	listErr   error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: []*domproduct.Product{
			{ID: "1", Name: "Royal Zulu Collar", Category: "necklaces", Price: decimal.RequireFromString("89.99"), Featured: true, InStock: true},
			{ID: "2", Name: "Heritage Bead Set", Category: "bracelets", Price: decimal.RequireFromString("45.00"), InStock: true},
			{ID: "3", Name: "Sunset Dreams Earrings", Category: "accessories", Price: decimal.RequireFromString("32.50"), InStock: true},
			{ID: "4", Name: "Warrior Princess Crown", Category: "ceremonial", Price: decimal.RequireFromString("175.00"), Featured: true, InStock: true},
			{ID: "5", Name: "Celestial Moon Anklet", Category: "accessories", Price: decimal.RequireFromString("24.99"), Featured: true, InStock: false},
		},
	}
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domproduct.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func TestListProducts_FiltersAndCounts(t *testing.T) {
	svc := NewService(newMockProductRepository())

	result, err := svc.List(context.Background(), domproduct.ListFilter{
		Category:  "accessories",
		PriceBand: domproduct.PriceBandUnder50,
		Sort:      domproduct.SortPriceAsc,
	})

	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.Len(t, result.Products, 2)
	require.Equal(t, "5", result.Products[0].ID)
	require.Equal(t, "3", result.Products[1].ID)
}

func TestListProducts_TotalIgnoresNonCategoryFilters(t *testing.T) {
	svc := NewService(newMockProductRepository())

	all, err := svc.List(context.Background(), domproduct.ListFilter{Query: "crown"})
	require.NoError(t, err)
	require.Len(t, all.Products, 1)
	require.Equal(t, 5, all.Total)

	necklaces, err := svc.List(context.Background(), domproduct.ListFilter{Category: "necklaces", PriceBand: domproduct.PriceBandOver100})
	require.NoError(t, err)
	require.Empty(t, necklaces.Products)
	require.Equal(t, 1, necklaces.Total)
}

func TestListProducts_MemoizedResultIsNotShared(t *testing.T) {
	svc := NewService(newMockProductRepository())
	filter := domproduct.ListFilter{Sort: domproduct.SortFeatured}

	first, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	first.Products[0] = nil

	second, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	require.NotNil(t, second.Products[0])
	require.Equal(t, "1", second.Products[0].ID)
}

func TestListProducts_EquivalentFiltersShareMemo(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.List(context.Background(), domproduct.ListFilter{Query: "  Crown ", Category: domproduct.AllValue})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), domproduct.ListFilter{Query: "crown", PriceBand: domproduct.PriceBandAll})
	require.NoError(t, err)

	require.Len(t, svc.memo, 1)
}

func TestListProducts_RepositoryError(t *testing.T) {
	repo := newMockProductRepository()
	repo.listErr = errors.New("catalog unavailable")
	svc := NewService(repo)

	_, err := svc.List(context.Background(), domproduct.ListFilter{})

	require.ErrorIs(t, err, repo.listErr)
}

func TestFeaturedProducts_Limit(t *testing.T) {
	svc := NewService(newMockProductRepository())

	featured, err := svc.Featured(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, "1", featured[0].ID)
	require.Equal(t, "4", featured[1].ID)
}

func TestGetProduct_Found(t *testing.T) {
	svc := NewService(newMockProductRepository())

	p, err := svc.GetByID(context.Background(), "4")

	require.NoError(t, err)
	require.Equal(t, "Warrior Princess Crown", p.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.GetByID(context.Background(), "404")

	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}
