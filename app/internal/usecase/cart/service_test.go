package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domcart "example.com/beadwork-storefront/app/internal/domain/cart"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	domsession "example.com/beadwork-storefront/app/internal/domain/session"
)

type mockSessionRepository struct {
	sessions map[string]*domsession.Session
}

func newMockSessionRepository(ids ...string) *mockSessionRepository {
	m := &mockSessionRepository{sessions: make(map[string]*domsession.Session)}
	for _, id := range ids {
		m.sessions[id] = domsession.New(id, time.Now())
	}
	return m
}

func (m *mockSessionRepository) Create(ctx context.Context, s *domsession.Session) error {
	if _, ok := m.sessions[s.ID]; ok {
		return domsession.ErrSessionExists
	}
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *mockSessionRepository) Get(ctx context.Context, id string) (*domsession.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domsession.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (m *mockSessionRepository) Update(ctx context.Context, id string, fn func(s *domsession.Session) error) (*domsession.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domsession.ErrSessionNotFound
	}
	working := s.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	m.sessions[id] = working
	return working.Clone(), nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type mockProductRepository struct {
	products map[string]*domproduct.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: map[string]*domproduct.Product{
			"1": {ID: "1", Name: "Royal Zulu Collar", Category: "necklaces", Price: decimal.NewFromInt(60), InStock: true},
			"2": {ID: "2", Name: "Sold Out Anklet", Category: "accessories", Price: decimal.NewFromInt(20), InStock: false},
			"3": {ID: "3", Name: "Heritage Bead Set", Category: "bracelets", Price: decimal.NewFromInt(40), InStock: true},
		},
	}
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

func TestAddToCart_NewLineThenIncrement(t *testing.T) {
	sessions := newMockSessionRepository("s1")
	svc := NewService(sessions, newMockProductRepository())
	ctx := context.Background()

	first, err := svc.AddToCart(ctx, "s1", "1")
	require.NoError(t, err)
	require.True(t, first.Created)
	require.Equal(t, int64(1), first.Line.Quantity)
	require.Equal(t, "60", first.Cart.Totals.Subtotal.String())
	require.Equal(t, "9.99", first.Cart.Totals.Shipping.String())
	require.Equal(t, "69.99", first.Cart.Totals.Total.String())

	second, err := svc.AddToCart(ctx, "s1", "1")
	require.NoError(t, err)
	require.False(t, second.Created)
	require.Equal(t, int64(2), second.Line.Quantity)
	require.Len(t, second.Cart.Lines, 1)
	require.Equal(t, "120", second.Cart.Totals.Total.String())
	require.True(t, second.Cart.Totals.FreeShipping)
}

func TestAddToCart_OutOfStockLeavesCartUnchanged(t *testing.T) {
	sessions := newMockSessionRepository("s1")
	svc := NewService(sessions, newMockProductRepository())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", "1")
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, "s1", "2")
	require.ErrorIs(t, err, domproduct.ErrOutOfStock)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	require.Equal(t, "1", view.Lines[0].ProductID)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc := NewService(newMockSessionRepository("s1"), newMockProductRepository())

	_, err := svc.AddToCart(context.Background(), "s1", "999")

	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestAddToCart_UnknownSession(t *testing.T) {
	svc := NewService(newMockSessionRepository(), newMockProductRepository())

	_, err := svc.AddToCart(context.Background(), "missing", "1")

	require.ErrorIs(t, err, domsession.ErrSessionNotFound)
}

func TestSetQuantity(t *testing.T) {
	sessions := newMockSessionRepository("s1")
	svc := NewService(sessions, newMockProductRepository())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", "3")
	require.NoError(t, err)

	view, err := svc.SetQuantity(ctx, "s1", "3", 5)
	require.NoError(t, err)
	require.Equal(t, int64(6), view.Totals.TotalItems)
	require.Equal(t, "260", view.Totals.Subtotal.String())

	view, err = svc.SetQuantity(ctx, "s1", "1", 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	require.Equal(t, "3", view.Lines[0].ProductID)

	view, err = svc.SetQuantity(ctx, "s1", "404", 3)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
}

func TestRemoveItem(t *testing.T) {
	sessions := newMockSessionRepository("s1")
	svc := NewService(sessions, newMockProductRepository())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", "1")
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "s1", "1")
	require.NoError(t, err)
	require.Empty(t, view.Lines)
	require.Equal(t, "0", view.Totals.Subtotal.String())
	require.Equal(t, "9.99", view.Totals.Total.String())

	view, err = svc.RemoveItem(ctx, "s1", "1")
	require.NoError(t, err)
	require.Empty(t, view.Lines)
}

func TestGetCart_Empty(t *testing.T) {
	svc := NewService(newMockSessionRepository("s1"), newMockProductRepository())

	view, err := svc.GetCart(context.Background(), "s1")

	require.NoError(t, err)
	require.Empty(t, view.Lines)
	require.Equal(t, int64(0), view.Totals.TotalItems)
}

func TestAddToCart_QuantityLimit(t *testing.T) {
	sessions := newMockSessionRepository("s1")
	svc := NewService(sessions, newMockProductRepository())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, "s1", "1", domcart.MaxQuantity)
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, "s1", "1")
	require.ErrorIs(t, err, domcart.ErrQuantityLimit)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, domcart.MaxQuantity, view.Lines[0].Quantity)
}
