package order

import (
	"time"

	domcart "example.com/beadwork-storefront/app/internal/domain/cart"
)

// Order is the snapshot handed to the external checkout flow.
type Order struct {
	ID        string
	SessionID string
	Lines     []domcart.Line
	Totals    domcart.Totals
	CreatedAt time.Time
}
