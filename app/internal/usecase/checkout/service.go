package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	domorder "example.com/beadwork-storefront/app/internal/domain/order"
	domsession "example.com/beadwork-storefront/app/internal/domain/session"
)

type SessionReader interface {
	Get(ctx context.Context, id string) (*domsession.Session, error)
}

// Handoff passes a checkout snapshot to the external checkout flow.
type Handoff interface {
	Handoff(ctx context.Context, o *domorder.Order) error
}

type Service struct {
	sessions SessionReader
	handoff  Handoff

	now   func() time.Time
	newID func() string
}

func NewService(sessions SessionReader, handoff Handoff) *Service {
	return &Service{
		sessions: sessions,
		handoff:  handoff,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Checkout snapshots the session cart and hands it off. The cart itself is
// left as is; the checkout flow downstream owns what happens next.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*domorder.Order, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Cart.IsEmpty() {
		return nil, domorder.ErrEmptyCart
	}

	order := &domorder.Order{
		ID:        s.newID(),
		SessionID: sess.ID,
		Lines:     sess.Cart.Lines(),
		Totals:    sess.Cart.Totals(),
		CreatedAt: s.now(),
	}

	if err := s.handoff.Handoff(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
