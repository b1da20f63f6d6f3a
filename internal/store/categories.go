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

func (s Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return listCategories(ctx, db)
}

func listCategories(ctx context.Context, q interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}) ([]model.Category, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, position, created_at_unixms FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		var createdMs int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &createdMs); err != nil {
			return nil, err
		}
		c.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	SortCategories(out)
	return out, nil
}

// AddCategory appends a category at the end of the current order.
func (s Store) AddCategory(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, errors.New("category name is empty")
	}
	id, err := newID("cat")
	if err != nil {
		return model.Category{}, err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Category{}, err
	}
	defer db.Close()

	var next int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM categories`).Scan(&next); err != nil {
		return model.Category{}, err
	}
	c := model.Category{ID: id, Name: name, Position: next, CreatedAt: time.Now().UTC()}
	if _, err := db.ExecContext(ctx, `INSERT INTO categories(id, name, position, created_at_unixms) VALUES(?, ?, ?, ?)`,
		c.ID, c.Name, c.Position, c.CreatedAt.UnixMilli()); err != nil {
		return model.Category{}, err
	}
	// Round-trip through milliseconds so callers see what a reload would return.
	c.CreatedAt = time.UnixMilli(c.CreatedAt.UnixMilli()).UTC()
	return c, nil
}

func (s Store) RenameCategory(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name is empty")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	res, err := db.ExecContext(ctx, `UPDATE categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}
	return requireRow(res, "category", id)
}

// DeleteCategory removes the category with its products and their cart lines.
func (s Store) DeleteCategory(ctx context.Context, id string) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	res, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "category", id)
}

// SetCategoryOrder persists orderedIDs as the new category order. Rows whose position
// is unchanged are not written.
func (s Store) SetCategoryOrder(ctx context.Context, orderedIDs []string) error {
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

	current, err := listCategories(ctx, tx)
	if err != nil {
		return err
	}
	plan, err := PlanCategoryOrder(current, orderedIDs)
	if err != nil {
		return err
	}
	for id, pos := range plan {
		if _, err := tx.ExecContext(ctx, `UPDATE categories SET position = ? WHERE id = ?`, pos, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ProductCounts returns the number of products per category id.
func (s Store) ProductCounts(ctx context.Context) (map[string]int, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	rows, err := db.QueryContext(ctx, `SELECT category_id, COUNT(1) FROM products GROUP BY category_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
