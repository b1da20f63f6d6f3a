package tui

import (
	"hypercart/internal/model"
	"hypercart/internal/reorder"
)

type listStyle string

const (
	listStyleRows  listStyle = "rows"
	listStyleCards listStyle = "cards"
)

func parseListStyle(s string) listStyle {
	if listStyle(s) == listStyleCards {
		return listStyleCards
	}
	return listStyleRows
}

// rowHeight is the number of terminal lines one category occupies.
func (s listStyle) rowHeight() int {
	if s == listStyleCards {
		return 3
	}
	return 1
}

// categoryList owns the ordered categories on screen and measures them for the
// reorder session. One terminal line is one unit of geometry.
type categoryList struct {
	items  []model.Category
	counts map[string]int
	style  listStyle

	// top is the first content line shown; frac carries sub-line scroll requests.
	top    int
	frac   float64
	height int

	selected int
	dirty    bool
}

var _ reorder.Geometry = (*categoryList)(nil)

func newCategoryList(style listStyle) *categoryList {
	return &categoryList{style: style, counts: map[string]int{}}
}

func (l *categoryList) setItems(items []model.Category, counts map[string]int) {
	selectedID := l.selectedID()
	l.items = items
	if counts == nil {
		counts = map[string]int{}
	}
	l.counts = counts
	l.dirty = false
	l.selected = 0
	l.selectID(selectedID)
	l.clampTop()
}

func (l *categoryList) selectedID() string {
	if l.selected < 0 || l.selected >= len(l.items) {
		return ""
	}
	return l.items[l.selected].ID
}

func (l *categoryList) selectID(id string) {
	for i, c := range l.items {
		if c.ID == id {
			l.selected = i
			return
		}
	}
}

// order is the on-screen order with Order renumbered to match.
func (l *categoryList) order() []reorder.Item {
	out := make([]reorder.Item, 0, len(l.items))
	for i, c := range l.items {
		it := c.Reorderable()
		it.Order = i
		out = append(out, it)
	}
	return out
}

func (l *categoryList) ids() []string {
	order := l.order()
	out := make([]string, 0, len(order))
	for _, it := range order {
		out = append(out, it.ID)
	}
	return out
}

func (l *categoryList) contentHeight() int {
	return len(l.items) * l.style.rowHeight()
}

func (l *categoryList) maxTop() int {
	if n := l.contentHeight() - l.height; n > 0 {
		return n
	}
	return 0
}

func (l *categoryList) clampTop() {
	if l.top > l.maxTop() {
		l.top = l.maxTop()
	}
	if l.top < 0 {
		l.top = 0
	}
}

// rowY is the content line where row index starts.
func (l *categoryList) rowY(index int) int {
	return index * l.style.rowHeight()
}

func (l *categoryList) indexAt(y int) int {
	if y < 0 || l.style.rowHeight() == 0 {
		return reorder.NoIndex
	}
	i := (y + l.top) / l.style.rowHeight()
	if i >= len(l.items) {
		return reorder.NoIndex
	}
	return i
}

func (l *categoryList) VisibleRows() []reorder.RowMeasurement {
	h := l.style.rowHeight()
	var out []reorder.RowMeasurement
	for i := range l.items {
		y := l.rowY(i) - l.top
		if y+h <= 0 {
			continue
		}
		if y >= l.height {
			break
		}
		out = append(out, reorder.RowMeasurement{Index: i, Offset: float64(y), Size: float64(h)})
	}
	return out
}

func (l *categoryList) Viewport() reorder.Viewport {
	return reorder.Viewport{Start: 0, End: float64(l.height)}
}

// ScrollBy moves the list by whole lines and keeps the remainder for the next call.
func (l *categoryList) ScrollBy(delta float64) {
	l.frac += delta
	n := int(l.frac)
	l.frac -= float64(n)
	want := l.top + n
	l.top = want
	l.clampTop()
	if l.top != want {
		// Pinned at an end: drop the remainder.
		l.frac = 0
	}
}

func (l *categoryList) FirstVisible() reorder.Anchor {
	h := l.style.rowHeight()
	if len(l.items) == 0 || h == 0 {
		return reorder.Anchor{Index: reorder.NoIndex}
	}
	i := l.top / h
	if i >= len(l.items) {
		i = len(l.items) - 1
	}
	return reorder.Anchor{Index: i, Offset: float64(l.top - l.rowY(i))}
}

func (l *categoryList) ScrollToFirstVisible(a reorder.Anchor) {
	if a.Index < 0 || a.Index >= len(l.items) {
		return
	}
	l.top = l.rowY(a.Index) + int(a.Offset)
	l.clampTop()
}

// Move is the list owner's reorder callback.
func (l *categoryList) Move(from, to int) {
	if from == to || from < 0 || to < 0 || from >= len(l.items) || to >= len(l.items) {
		return
	}
	selectedID := l.selectedID()
	c := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
	}
	l.items[to] = c
	l.dirty = true
	l.selectID(selectedID)
}

// ensureVisible scrolls the minimum needed to show row index.
func (l *categoryList) ensureVisible(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	y := l.rowY(index)
	h := l.style.rowHeight()
	if y < l.top {
		l.top = y
	} else if y+h > l.top+l.height {
		l.top = y + h - l.height
	}
	l.clampTop()
}
