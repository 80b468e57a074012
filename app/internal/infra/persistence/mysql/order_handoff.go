package mysql

import (
	"context"
	"database/sql"
	"fmt"

	domorder "example.com/beadwork-storefront/app/internal/domain/order"
)

// OrderHandoff records checkout snapshots in the checkout_orders and
// checkout_order_lines tables, where the downstream checkout flow picks
// them up. Prices are stored as DECIMAL(10,2).
type OrderHandoff struct {
	db *sql.DB
}

func NewOrderHandoff(db *sql.DB) *OrderHandoff {
	return &OrderHandoff{db: db}
}

func (r *OrderHandoff) Handoff(ctx context.Context, o *domorder.Order) error {
	if err := r.insert(ctx, o); err != nil {
		return fmt.Errorf("%w: %v", domorder.ErrHandoffFailed, err)
	}
	return nil
}

func (r *OrderHandoff) insert(ctx context.Context, o *domorder.Order) (retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO checkout_orders (id, session_id, total_items, subtotal, shipping, total, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, o.ID, o.SessionID, o.Totals.TotalItems,
		o.Totals.Subtotal.StringFixed(2), o.Totals.Shipping.StringFixed(2), o.Totals.Total.StringFixed(2),
		o.CreatedAt.UTC())
	if err != nil {
		return err
	}

	for i, line := range o.Lines {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO checkout_order_lines (order_id, position, product_id, product_name, unit_price, quantity)
            VALUES (?, ?, ?, ?, ?, ?)
        `, o.ID, i, line.ProductID, line.Name, line.Price.StringFixed(2), line.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
