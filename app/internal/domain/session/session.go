package session

import (
	"time"

	domcart "example.com/beadwork-storefront/app/internal/domain/cart"
	domview "example.com/beadwork-storefront/app/internal/domain/view"
)

// Session is the ephemeral state of one shopper: what they are looking at
// and what is in their cart. Nothing in it outlives the process.
type Session struct {
	ID        string
	View      domview.State
	Cart      *domcart.Cart
	CreatedAt time.Time
	LastSeen  time.Time
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		View:      domview.NewState(),
		Cart:      domcart.New(),
		CreatedAt: now,
		LastSeen:  now,
	}
}

func (s *Session) Clone() *Session {
	cloned := *s
	cloned.Cart = s.Cart.Clone()
	return &cloned
}
