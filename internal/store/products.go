package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hypercart/internal/model"
)

// ListProducts returns products ordered by name. An empty categoryID lists everything.
func (s Store) ListProducts(ctx context.Context, categoryID string) ([]model.Product, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, category_id, name, price_cents, created_at_unixms FROM products`
	var args []any
	if categoryID = strings.TrimSpace(categoryID); categoryID != "" {
		q += ` WHERE category_id = ?`
		args = append(args, categoryID)
	}
	q += ` ORDER BY name, id`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		var createdMs int64
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.PriceCents, &createdMs); err != nil {
			return nil, err
		}
		p.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s Store) AddProduct(ctx context.Context, categoryID, name string, priceCents int64) (model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Product{}, errors.New("product name is empty")
	}
	if priceCents < 0 {
		return model.Product{}, fmt.Errorf("negative price: %d", priceCents)
	}
	id, err := newID("prd")
	if err != nil {
		return model.Product{}, err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Product{}, err
	}
	defer db.Close()

	var exists int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE id = ?`, categoryID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}
	if err != nil {
		return model.Product{}, err
	}

	now := time.UnixMilli(time.Now().UnixMilli()).UTC()
	p := model.Product{ID: id, CategoryID: categoryID, Name: name, PriceCents: priceCents, CreatedAt: now}
	if _, err := db.ExecContext(ctx, `INSERT INTO products(id, category_id, name, price_cents, created_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		p.ID, p.CategoryID, p.Name, p.PriceCents, now.UnixMilli()); err != nil {
		return model.Product{}, err
	}
	return p, nil
}
