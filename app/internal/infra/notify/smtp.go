package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	domorder "example.com/beadwork-storefront/app/internal/domain/order"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPHandoff mails each checkout snapshot to the fulfilment inbox.
type SMTPHandoff struct {
	addr string
	from string
	to   []string
	send sendFunc
}

func NewSMTPHandoff(addr, from string, to []string) *SMTPHandoff {
	return &SMTPHandoff{
		addr: addr,
		from: from,
		to:   to,
		send: smtp.SendMail,
	}
}

func (h *SMTPHandoff) Handoff(ctx context.Context, o *domorder.Order) error {
	if err := h.send(h.addr, nil, h.from, h.to, FormatMessage(h.from, h.to, o)); err != nil {
		return fmt.Errorf("%w: %v", domorder.ErrHandoffFailed, err)
	}
	return nil
}

func FormatMessage(from string, to []string, o *domorder.Order) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: Checkout %s\r\n", o.ID)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "Session: %s\r\n", o.SessionID)
	fmt.Fprintf(&b, "Placed: %s\r\n\r\n", o.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	for _, l := range o.Lines {
		fmt.Fprintf(&b, "%dx %s (%s) @ $%s = $%s\r\n",
			l.Quantity, l.Name, l.ProductID, l.Price.StringFixed(2), l.Total().StringFixed(2))
	}
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Items: %d\r\n", o.Totals.TotalItems)
	fmt.Fprintf(&b, "Subtotal: $%s\r\n", o.Totals.Subtotal.StringFixed(2))
	if o.Totals.FreeShipping {
		b.WriteString("Shipping: FREE\r\n")
	} else {
		fmt.Fprintf(&b, "Shipping: $%s\r\n", o.Totals.Shipping.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\r\n", o.Totals.Total.StringFixed(2))
	return []byte(b.String())
}
