package reorder

import "math"

// Options tunes a Session.
type Options struct {
	// MaxScrollStep caps the magnitude of one auto-scroll request. Zero means no cap.
	MaxScrollStep float64
	Logger        Logger
}

// Session turns pointer samples of a single drag gesture into list moves and
// auto-scroll requests.
//
// A Session is driven from the UI goroutine only: Start, Drag, End and Cancel must not
// be called concurrently. It never caches geometry; every call pulls a fresh snapshot.
type Session struct {
	geom    Geometry
	move    MoveFunc
	queue   *ScrollQueue
	settler *Settler
	opts    Options

	dragging      int
	initialOffset float64
	delta         float64
	size          float64
}

func NewSession(geom Geometry, move MoveFunc, queue *ScrollQueue, settler *Settler, opts Options) *Session {
	if settler == nil {
		settler = NewSettler(SpringConfig{})
	}
	return &Session{
		geom:     geom,
		move:     move,
		queue:    queue,
		settler:  settler,
		opts:     opts,
		dragging: NoIndex,
	}
}

func (s *Session) Active() bool { return s.dragging != NoIndex }

// Dragging returns the index currently owned by the drag, or NoIndex.
func (s *Session) Dragging() int { return s.dragging }

func (s *Session) Settler() *Settler { return s.settler }

// Start begins a drag on the row under pos. It reports whether a row was hit; a press
// on empty space leaves the session idle.
func (s *Session) Start(pos float64) bool {
	r, ok := rowAt(s.geom.VisibleRows(), pos)
	if !ok {
		return false
	}
	s.settler.Cancel()
	s.dragging = r.Index
	s.initialOffset = r.Offset
	s.delta = 0
	s.size = r.Size
	s.logf("reorder: drag start index=%d offset=%.1f", r.Index, r.Offset)
	return true
}

// Drag applies one movement sample. delta is the pointer movement since the previous
// sample along the list axis.
func (s *Session) Drag(delta float64) {
	if !s.Active() {
		return
	}
	s.delta += delta
	// Swaps come first; once every crossed row is resolved the live range may still sit
	// past an edge, and scrolling has to keep going.
	s.resolveSwaps()
	if over := s.overscroll(); over != 0 && s.queue != nil {
		s.queue.Offer(over)
	}
}

// End finishes the gesture and hands the dropped row to the settler. It reports whether
// a settle animation started. Calling End while idle does nothing.
func (s *Session) End() bool {
	if !s.Active() {
		return false
	}
	index := s.dragging
	offset := s.DisplayOffset(index)
	s.reset()
	s.settler.Start(index, offset)
	s.logf("reorder: drag end index=%d settle=%.1f", index, offset)
	return s.settler.Active()
}

// Cancel is End under another name: swaps already emitted stay applied.
func (s *Session) Cancel() bool { return s.End() }

// IsDragging reports whether index is the row under the pointer.
func (s *Session) IsDragging(index int) bool {
	return s.Active() && index == s.dragging
}

// DisplayOffset is how far row index should be drawn from its laid-out position:
// the live drag offset for the dragged row, the settle offset for the dropped row,
// zero for everything else.
func (s *Session) DisplayOffset(index int) float64 {
	if s.IsDragging(index) {
		r, ok := findRow(s.geom.VisibleRows(), index)
		if !ok {
			return 0
		}
		return s.initialOffset + s.delta - r.Offset
	}
	return s.settler.Offset(index)
}

func (s *Session) reset() {
	s.dragging = NoIndex
	s.initialOffset = 0
	s.delta = 0
	s.size = 0
}

func (s *Session) liveRange() (start, end float64) {
	start = s.initialOffset + s.delta
	return start, start + s.size
}

// resolveSwaps moves the dragged row past every neighbor whose midpoint it has
// crossed, one adjacent step at a time. Geometry is re-read after each move.
func (s *Session) resolveSwaps() {
	// Each pass either swaps with a distinct neighbor or stops; the bound only guards
	// against a geometry provider that never reflects moves.
	for pass := 0; ; pass++ {
		rows := s.geom.VisibleRows()
		if pass > len(rows) {
			break
		}
		cur, ok := findRow(rows, s.dragging)
		if !ok {
			// The list changed under the gesture; wait for a snapshot that has us.
			break
		}
		s.size = cur.Size
		target, ok := s.swapTarget(rows)
		if !ok {
			break
		}
		s.swap(target)
	}
}

// swapTarget finds an adjacent row whose current midpoint lies in the dragged row's
// live range on the far side of the live midpoint.
func (s *Session) swapTarget(rows []RowMeasurement) (int, bool) {
	start, end := s.liveRange()
	mid := (start + end) / 2
	if below, ok := findRow(rows, s.dragging+1); ok && below.Mid() <= mid {
		return below.Index, true
	}
	if above, ok := findRow(rows, s.dragging-1); ok && above.Mid() >= mid {
		return above.Index, true
	}
	return NoIndex, false
}

func (s *Session) swap(to int) {
	from := s.dragging
	if from == to {
		return
	}
	anchor := s.geom.FirstVisible()
	if from == anchor.Index || to == anchor.Index {
		s.geom.ScrollToFirstVisible(anchor)
	}
	s.move(from, to)
	s.dragging = to
	s.logf("reorder: swap %d -> %d", from, to)
}

func (s *Session) overscroll() float64 {
	start, end := s.liveRange()
	vp := s.geom.Viewport()
	var over float64
	switch {
	case s.delta > 0:
		over = math.Max(end-vp.End, 0)
	case s.delta < 0:
		over = math.Min(start-vp.Start, 0)
	}
	if limit := s.opts.MaxScrollStep; limit > 0 {
		over = math.Max(-limit, math.Min(limit, over))
	}
	return over
}

func (s *Session) logf(format string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger(format, args...)
	}
}
