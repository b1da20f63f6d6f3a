package reorder

// NoIndex marks the absence of a row index (no drag in progress, no settling row).
const NoIndex = -1

// Item is one reorderable entry of the list owner's ordered view.
// ID never changes; Order defines render sequence and is owned by the caller.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// RowMeasurement is the measured layout of one visible row, in pixels from the list top.
type RowMeasurement struct {
	Index  int
	Offset float64
	Size   float64
}

func (r RowMeasurement) End() float64 { return r.Offset + r.Size }

func (r RowMeasurement) Mid() float64 { return r.Offset + r.Size/2 }

// Contains reports whether pos falls inside [Offset, Offset+Size).
func (r RowMeasurement) Contains(pos float64) bool {
	return pos >= r.Offset && pos < r.End()
}

// Viewport is the visible scroll range of the list.
type Viewport struct {
	Start float64
	End   float64
}

// Anchor pins a scroll position: the first visible row and how far it is scrolled.
type Anchor struct {
	Index  int
	Offset float64
}

// Scroller moves the list's scroll position. Implementations may apply the delta
// asynchronously; the effect shows up in the next VisibleRows snapshot.
type Scroller interface {
	ScrollBy(delta float64)
}

// Geometry is the live layout of the list being reordered.
//
// Every call returns a fresh snapshot; callers must not keep the slice returned by
// VisibleRows across a drag sample.
type Geometry interface {
	Scroller
	VisibleRows() []RowMeasurement
	Viewport() Viewport
	FirstVisible() Anchor
	ScrollToFirstVisible(a Anchor)
}

// MoveFunc is the list owner's reorder callback. It must apply the move before
// returning so the next VisibleRows call reflects the new order.
type MoveFunc func(from, to int)

// Logger receives engine trace lines. log.Printf satisfies it.
type Logger func(format string, args ...any)

func findRow(rows []RowMeasurement, index int) (RowMeasurement, bool) {
	for _, r := range rows {
		if r.Index == index {
			return r, true
		}
	}
	return RowMeasurement{}, false
}

func rowAt(rows []RowMeasurement, pos float64) (RowMeasurement, bool) {
	for _, r := range rows {
		if r.Contains(pos) {
			return r, true
		}
	}
	return RowMeasurement{}, false
}
