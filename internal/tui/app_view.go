package tui

import (
	"fmt"
	"math"
	"strings"

	"hypercart/internal/reorder"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Hypercart  Categories (%d)", len(m.list.items)))
	header = padOrCutANSI(header+"  "+styleMuted().Render(m.store.Dir), w)

	body := m.viewList(w)

	status := ""
	if m.status != "" {
		st := styleMuted()
		if m.statusErr {
			st = lipgloss.NewStyle().Foreground(colorError)
		}
		status = st.Render(m.status)
	}
	m.help.ShowAll = m.showHelp
	footer := status + "\n" + m.help.View(m.keys)

	return strings.Join([]string{header, "", body, footer}, "\n")
}

// viewList draws the visible categories. Rows sit at their laid-out offsets, except the
// lifted row, which is drawn on top at its display offset.
func (m appModel) viewList(width int) string {
	h := m.list.height
	if h <= 0 {
		return ""
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	if len(m.list.items) == 0 {
		lines[0] = padOrCutANSI(styleMuted().Render("No categories yet. Add one with `hypercart categories add <name>`."), width)
		return strings.Join(lines, "\n")
	}

	st := newRowStyles()
	settling := m.session.Settler().State()
	lifted := reorder.NoIndex
	switch {
	case m.session.Active():
		lifted = m.session.Dragging()
	case settling.Active():
		lifted = settling.PreviousIndex
	}

	var liftedRow *reorder.RowMeasurement
	for _, r := range m.list.VisibleRows() {
		y := int(r.Offset)
		if r.Index == lifted {
			liftedRow = &r
			if m.session.Active() {
				blit(lines, renderSlot(st, m.list.style, width), y)
			}
			continue
		}
		state := rowNormal
		if r.Index == m.list.selected {
			state = rowSelected
		}
		c := m.list.items[r.Index]
		blit(lines, renderCategory(st, m.list.style, c, m.list.counts[c.ID], width, state), y)
	}

	if liftedRow != nil {
		c := m.list.items[liftedRow.Index]
		y := int(math.Round(liftedRow.Offset + m.session.DisplayOffset(liftedRow.Index)))
		blit(lines, renderCategory(st, m.list.style, c, m.list.counts[c.ID], width, rowLifted), y)
	}

	if m.list.maxTop() > 0 {
		hint := fmt.Sprintf(" %d/%d ", m.list.top+m.list.height, m.list.contentHeight())
		last := h - 1
		lines[last] = padOrCutANSI(lines[last], width-len(hint)) + styleMuted().Render(hint)
	}
	return strings.Join(lines, "\n")
}

// blit writes block into lines starting at y, dropping lines that fall outside.
func blit(lines, block []string, y int) {
	for i, ln := range block {
		if at := y + i; at >= 0 && at < len(lines) {
			lines[at] = ln
		}
	}
}
