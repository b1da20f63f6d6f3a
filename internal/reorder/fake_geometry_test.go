package reorder

import "strings"

// fakeList is an in-memory list owner + geometry provider with uniform-or-custom row
// sizes and a pixel scroll position.
type fakeList struct {
	ids    []string
	sizes  map[string]float64
	size   float64
	height float64
	scroll float64

	moves   [][2]int
	scrolls []float64
	pins    []Anchor
}

func newFakeList(n int, rowSize, height float64) *fakeList {
	f := &fakeList{size: rowSize, height: height, sizes: map[string]float64{}}
	for i := 0; i < n; i++ {
		f.ids = append(f.ids, string(rune('A'+i)))
	}
	return f
}

func (f *fakeList) rowSize(id string) float64 {
	if s, ok := f.sizes[id]; ok {
		return s
	}
	return f.size
}

func (f *fakeList) VisibleRows() []RowMeasurement {
	var out []RowMeasurement
	y := -f.scroll
	for i, id := range f.ids {
		sz := f.rowSize(id)
		if y+sz > 0 && y < f.height {
			out = append(out, RowMeasurement{Index: i, Offset: y, Size: sz})
		}
		y += sz
	}
	return out
}

func (f *fakeList) Viewport() Viewport { return Viewport{Start: 0, End: f.height} }

func (f *fakeList) ScrollBy(delta float64) {
	f.scrolls = append(f.scrolls, delta)
	f.scroll += delta
	if f.scroll < 0 {
		f.scroll = 0
	}
}

func (f *fakeList) FirstVisible() Anchor {
	rows := f.VisibleRows()
	if len(rows) == 0 {
		return Anchor{Index: NoIndex}
	}
	return Anchor{Index: rows[0].Index, Offset: -rows[0].Offset}
}

func (f *fakeList) ScrollToFirstVisible(a Anchor) {
	f.pins = append(f.pins, a)
	y := 0.0
	for i := 0; i < a.Index && i < len(f.ids); i++ {
		y += f.rowSize(f.ids[i])
	}
	f.scroll = y + a.Offset
}

func (f *fakeList) Move(from, to int) {
	f.moves = append(f.moves, [2]int{from, to})
	if from < 0 || from >= len(f.ids) || to < 0 || to >= len(f.ids) {
		return
	}
	id := f.ids[from]
	rest := append(append([]string{}, f.ids[:from]...), f.ids[from+1:]...)
	f.ids = append(append(append([]string{}, rest[:to]...), id), rest[to:]...)
}

func (f *fakeList) order() string { return strings.Join(f.ids, "") }

func newTestSession(f *fakeList, opts Options) (*Session, *ScrollQueue) {
	q := NewScrollQueue()
	return NewSession(f, f.Move, q, NewSettler(SpringConfig{}), opts), q
}
