package tui

import (
	"testing"

	"hypercart/internal/model"
	"hypercart/internal/reorder"
)

func testList(n int, style listStyle, height int) *categoryList {
	l := newCategoryList(style)
	var cs []model.Category
	for i := 0; i < n; i++ {
		cs = append(cs, model.Category{ID: string(rune('a' + i)), Name: string(rune('A' + i)), Position: i})
	}
	l.setItems(cs, nil)
	l.height = height
	return l
}

func TestCategoryList_VisibleRowsFollowScroll(t *testing.T) {
	l := testList(10, listStyleCards, 7)
	l.ScrollBy(4)

	rows := l.VisibleRows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 partially visible cards; got %+v", rows)
	}
	if rows[0].Index != 1 || rows[0].Offset != -1 || rows[0].Size != 3 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if a := l.FirstVisible(); a.Index != 1 || a.Offset != 1 {
		t.Fatalf("unexpected anchor: %+v", a)
	}

	l.ScrollBy(100)
	if l.top != l.maxTop() || l.maxTop() != 23 {
		t.Fatalf("expected clamp to %d; top=%d", l.maxTop(), l.top)
	}
	l.ScrollToFirstVisible(reorder.Anchor{Index: 2, Offset: 1})
	if l.top != 7 {
		t.Fatalf("expected pin to line 7; top=%d", l.top)
	}
}

func TestCategoryList_FractionalScrollAccumulates(t *testing.T) {
	l := testList(10, listStyleRows, 4)
	l.ScrollBy(0.4)
	l.ScrollBy(0.4)
	if l.top != 0 {
		t.Fatalf("expected no whole-line scroll yet; top=%d", l.top)
	}
	l.ScrollBy(0.4)
	if l.top != 1 {
		t.Fatalf("expected one line; top=%d", l.top)
	}
	l.ScrollBy(-5)
	if l.top != 0 || l.frac != 0 {
		t.Fatalf("expected clamp at top to drop the remainder; top=%d frac=%v", l.top, l.frac)
	}
}

func TestCategoryList_MoveKeepsSelection(t *testing.T) {
	l := testList(4, listStyleRows, 4)
	l.selected = 2 // C
	l.Move(0, 3)
	if got := l.ids(); got[0] != "b" || got[3] != "a" {
		t.Fatalf("unexpected order: %v", got)
	}
	if l.selectedID() != "c" || l.selected != 1 {
		t.Fatalf("expected C to stay selected; got %q at %d", l.selectedID(), l.selected)
	}
	if !l.dirty {
		t.Fatalf("expected move to mark the list dirty")
	}
	l.Move(1, 1)
	l.Move(-1, 2)
	if got := l.ids(); got[1] != "c" {
		t.Fatalf("expected no-op moves; got %v", got)
	}
}
