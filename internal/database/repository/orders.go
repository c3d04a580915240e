package repository

import (
	"context"
	"fmt"
)

// OrderRepo handles placed orders.
type OrderRepo struct {
	db DBTX
}

func NewOrderRepo(db DBTX) *OrderRepo { return &OrderRepo{db: db} }

// Insert writes the order and its lines. Callers wanting atomicity pass a *sql.Tx.
func (r *OrderRepo) Insert(ctx context.Context, o PlacedOrder) error {
	if _, err := r.db.ExecContext(ctx, `
	INSERT INTO orders(id, subtotal, tax, total, placed_at) VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Subtotal.String(), o.Tax.String(), o.Total.String(), o.PlacedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, l := range o.Lines {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items(order_id, course, item_id, name, price) VALUES (?, ?, ?, ?, ?)`,
			o.ID, l.Course, l.ItemID, l.Name, l.Price.String()); err != nil {
			return fmt.Errorf("insert order line %s: %w", l.Course, err)
		}
	}
	return nil
}

// Recent lists the newest orders first, with lines. placed_at has second
// resolution, so ties fall back to insertion order.
func (r *OrderRepo) Recent(ctx context.Context, limit int) ([]PlacedOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, subtotal, tax, total, placed_at FROM orders
	ORDER BY placed_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	var out []PlacedOrder
	for rows.Next() {
		var o PlacedOrder
		if err := rows.Scan(&o.ID, &o.Subtotal, &o.Tax, &o.Total, &o.PlacedAt); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// lines are loaded after the order cursor is closed; sqlite runs on one connection
	for i := range out {
		lines, err := r.lines(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Lines = lines
	}
	return out, nil
}

func (r *OrderRepo) lines(ctx context.Context, orderID string) ([]OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT course, item_id, name, price FROM order_items WHERE order_id = ?
	ORDER BY CASE course WHEN 'entree' THEN 0 WHEN 'side_dish' THEN 1 ELSE 2 END`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OrderLine
	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.Course, &l.ItemID, &l.Name, &l.Price); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}
