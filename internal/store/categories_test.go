package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	t.Setenv("HYPERCART_CONFIG_DIR", t.TempDir())
	return Store{Dir: t.TempDir()}
}

func categoryNames(t *testing.T, s Store) string {
	t.Helper()
	cs, err := s.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	var names []string
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return strings.Join(names, ",")
}

func TestCategories_AddAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, n := range []string{"Produce", "Dairy", "Bakery"} {
		if _, err := s.AddCategory(ctx, n); err != nil {
			t.Fatalf("add %s: %v", n, err)
		}
	}
	if got := categoryNames(t, s); got != "Produce,Dairy,Bakery" {
		t.Fatalf("unexpected order: %s", got)
	}
	if _, err := s.AddCategory(ctx, "   "); err == nil {
		t.Fatalf("expected empty name to be rejected")
	}
}

func TestCategories_SetOrderRewritesOnlyMovedRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var ids []string
	for _, n := range []string{"A", "B", "C", "D"} {
		c, err := s.AddCategory(ctx, n)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		ids = append(ids, c.ID)
	}

	cur, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	next := []string{ids[0], ids[2], ids[1], ids[3]}
	plan, err := PlanCategoryOrder(cur, next)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan) != 2 || plan[ids[2]] != 1 || plan[ids[1]] != 2 {
		t.Fatalf("expected only B and C to move; got %v", plan)
	}

	if err := s.SetCategoryOrder(ctx, next); err != nil {
		t.Fatalf("set order: %v", err)
	}
	if got := categoryNames(t, s); got != "A,C,B,D" {
		t.Fatalf("unexpected order after reorder: %s", got)
	}
}

func TestCategories_SetOrderRejectsBadPermutations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	a, _ := s.AddCategory(ctx, "A")
	if _, err := s.AddCategory(ctx, "B"); err != nil {
		t.Fatalf("add: %v", err)
	}

	cases := []struct {
		name string
		ids  []string
	}{
		{name: "missing", ids: []string{a.ID}},
		{name: "duplicate", ids: []string{a.ID, a.ID}},
		{name: "unknown", ids: []string{a.ID, "cat-nope"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.SetCategoryOrder(ctx, tc.ids); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if got := categoryNames(t, s); got != "A,B" {
		t.Fatalf("expected order untouched; got %s", got)
	}
}

func TestCategories_RenameAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	c, _ := s.AddCategory(ctx, "Snacks")
	p, err := s.AddProduct(ctx, c.ID, "Chips", 299)
	if err != nil {
		t.Fatalf("add product: %v", err)
	}
	if err := s.AddToCart(ctx, p.ID, 2); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	if err := s.RenameCategory(ctx, c.ID, "Treats"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got := categoryNames(t, s); got != "Treats" {
		t.Fatalf("expected renamed category; got %s", got)
	}
	if err := s.RenameCategory(ctx, "cat-missing", "X"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound; got %v", err)
	}

	if err := s.DeleteCategory(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	ps, err := s.ListProducts(ctx, "")
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(ps) != 0 {
		t.Fatalf("expected products to cascade; got %+v", ps)
	}
	cart, err := s.Cart(ctx)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected cart lines to cascade; got %+v", cart.Lines)
	}
}

func TestMoveID(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	cases := []struct {
		id   string
		at   int
		want string
	}{
		{id: "a", at: 2, want: "b,c,a,d"},
		{id: "d", at: 0, want: "d,a,b,c"},
		{id: "b", at: 99, want: "a,c,d,b"},
		{id: "c", at: -3, want: "c,a,b,d"},
	}
	for _, tc := range cases {
		got, err := MoveID(ids, tc.id, tc.at)
		if err != nil {
			t.Fatalf("move %s: %v", tc.id, err)
		}
		if strings.Join(got, ",") != tc.want {
			t.Fatalf("move %s to %d: want %s got %v", tc.id, tc.at, tc.want, got)
		}
	}
	if strings.Join(ids, ",") != "a,b,c,d" {
		t.Fatalf("expected input untouched; got %v", ids)
	}
	if _, err := MoveID(ids, "zz", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound; got %v", err)
	}
}
