package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hypercart/internal/model"
)

// AddToCart adds qty of a product to the cart, creating the line if needed.
func (s Store) AddToCart(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive: %d", qty)
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, productID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT INTO cart_lines(product_id, quantity, updated_at_unixms) VALUES(?, ?, ?)
		ON CONFLICT(product_id) DO UPDATE SET quantity = quantity + excluded.quantity, updated_at_unixms = excluded.updated_at_unixms`,
		productID, qty, time.Now().UTC().UnixMilli())
	return err
}

// RemoveFromCart takes qty off a line; the line is dropped once it reaches zero.
// qty <= 0 removes the whole line.
func (s Store) RemoveFromCart(ctx context.Context, productID string, qty int) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var cur int
	err = tx.QueryRowContext(ctx, `SELECT quantity FROM cart_lines WHERE product_id = ?`, productID).Scan(&cur)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("cart line %s: %w", productID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if qty <= 0 || qty >= cur {
		_, err = tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE product_id = ?`, productID)
	} else {
		_, err = tx.ExecContext(ctx, `UPDATE cart_lines SET quantity = ?, updated_at_unixms = ? WHERE product_id = ?`,
			cur-qty, time.Now().UTC().UnixMilli(), productID)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s Store) Cart(ctx context.Context) (model.Cart, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Cart{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT p.id, p.category_id, p.name, p.price_cents, p.created_at_unixms,
			c.quantity, c.updated_at_unixms
		FROM cart_lines c JOIN products p ON p.id = c.product_id
		ORDER BY p.name, p.id`)
	if err != nil {
		return model.Cart{}, err
	}
	defer rows.Close()

	cart := model.Cart{Lines: []model.CartLine{}}
	for rows.Next() {
		var l model.CartLine
		var createdMs, updatedMs int64
		if err := rows.Scan(&l.Product.ID, &l.Product.CategoryID, &l.Product.Name, &l.Product.PriceCents, &createdMs,
			&l.Quantity, &updatedMs); err != nil {
			return model.Cart{}, err
		}
		l.Product.CreatedAt = time.UnixMilli(createdMs).UTC()
		l.UpdatedAt = time.UnixMilli(updatedMs).UTC()
		cart.Lines = append(cart.Lines, l)
		cart.ItemCount += l.Quantity
		cart.TotalCents += l.SubtotalCents()
	}
	return cart, rows.Err()
}
