package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	domcart "example.com/beadwork-storefront/app/internal/domain/cart"
	domorder "example.com/beadwork-storefront/app/internal/domain/order"
)

func sampleOrder() *domorder.Order {
	return &domorder.Order{
		ID:        "order-1",
		SessionID: "session-1",
		Lines: []domcart.Line{
			{ProductID: "1", Name: "Royal Zulu Collar", Price: decimal.RequireFromString("60"), Quantity: 2},
		},
		Totals: domcart.Totals{
			TotalItems:   2,
			Subtotal:     decimal.RequireFromString("120"),
			Shipping:     decimal.Zero,
			Total:        decimal.RequireFromString("120"),
			FreeShipping: true,
		},
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatMessage(t *testing.T) {
	msg := string(FormatMessage("shop@example.com", []string{"orders@example.com"}, sampleOrder()))

	require.Contains(t, msg, "To: orders@example.com\r\n")
	require.Contains(t, msg, "Subject: Checkout order-1\r\n")
	require.Contains(t, msg, "2x Royal Zulu Collar (1) @ $60.00 = $120.00")
	require.Contains(t, msg, "Shipping: FREE")
	require.Contains(t, msg, "Total: $120.00")
}

func TestSMTPHandoff_Sends(t *testing.T) {
	h := NewSMTPHandoff("localhost:2025", "shop@example.com", []string{"orders@example.com"})
	var gotAddr string
	var gotTo []string
	h.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		return nil
	}

	require.NoError(t, h.Handoff(context.Background(), sampleOrder()))
	require.Equal(t, "localhost:2025", gotAddr)
	require.Equal(t, []string{"orders@example.com"}, gotTo)
}

func TestSMTPHandoff_WrapsFailures(t *testing.T) {
	h := NewSMTPHandoff("localhost:2025", "shop@example.com", []string{"orders@example.com"})
	h.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	err := h.Handoff(context.Background(), sampleOrder())

	require.ErrorIs(t, err, domorder.ErrHandoffFailed)
	require.Contains(t, err.Error(), "connection refused")
}

func TestLogHandoff(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewLogHandoff(zap.New(core))

	require.NoError(t, h.Handoff(context.Background(), sampleOrder()))

	entries := logs.FilterMessage("checkout handed off").All()
	require.Len(t, entries, 1)
	require.Equal(t, "120.00", entries[0].ContextMap()["total"])
}
