package cart

import (
	"context"

	domcart "example.com/beadwork-storefront/app/internal/domain/cart"
	domproduct "example.com/beadwork-storefront/app/internal/domain/product"
	domsession "example.com/beadwork-storefront/app/internal/domain/session"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domproduct.Product, error)
}

// View is a read-only rendering of a cart with its derived totals.
type View struct {
	Lines  []domcart.Line
	Totals domcart.Totals
}

type AddResult struct {
	Line domcart.Line
	// Created is false when an existing line was incremented.
	Created bool
	Cart    *View
}

type Service struct {
	sessions    domsession.Repository
	productRepo ProductRepository
}

func NewService(sessions domsession.Repository, productRepo ProductRepository) *Service {
	return &Service{
		sessions:    sessions,
		productRepo: productRepo,
	}
}

func (s *Service) AddToCart(ctx context.Context, sessionID, productID string) (*AddResult, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var (
		line    domcart.Line
		created bool
	)
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *domsession.Session) error {
		var addErr error
		line, created, addErr = sess.Cart.Add(p)
		return addErr
	})
	if err != nil {
		return nil, err
	}

	return &AddResult{
		Line:    line,
		Created: created,
		Cart:    viewOf(sess.Cart),
	}, nil
}

// SetQuantity sets a line to exactly quantity; zero or less removes it.
// Unknown product ids leave the cart untouched.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int64) (*View, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *domsession.Session) error {
		sess.Cart.SetQuantity(productID, quantity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return viewOf(sess.Cart), nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*View, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *domsession.Session) error {
		sess.Cart.Remove(productID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return viewOf(sess.Cart), nil
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (*View, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(sess.Cart), nil
}

func viewOf(c *domcart.Cart) *View {
	return &View{
		Lines:  c.Lines(),
		Totals: c.Totals(),
	}
}
