package tui

import (
	"log"

	"hypercart/internal/reorder"
	"hypercart/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.list.ensureVisible(m.list.selected)
		return m, nil

	case reloadTickMsg:
		// Never swap the list out from under a gesture or a drop animation.
		if !m.session.Active() && !m.session.Settler().Active() && m.storeChanged() {
			if err := m.reloadFromDisk(); err != nil {
				m.setStatus(err.Error(), true)
			}
		}
		return m, tickReload()

	case autoScrollMsg:
		if !m.session.Active() {
			return m, nil
		}
		top, frac := m.list.top, m.list.frac
		m.list.ScrollBy(msg.delta)
		if m.list.top != top || m.list.frac != frac {
			// The rows moved under a still pointer: re-evaluate swaps and keep scrolling
			// while it stays past the edge.
			m.session.Drag(0)
		}
		return m, nil

	case settleFrameMsg:
		if m.session.Settler().Step(msg.gen, settleFrame) {
			return m, settleFrameCmd(msg.gen)
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := msg.Y - headerLines

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.session.Active() {
				return m, nil
			}
			if y < 0 || y >= m.list.height {
				return m, nil
			}
			if i := m.list.indexAt(y); i != reorder.NoIndex {
				m.list.selected = i
			}
			if m.session.Start(float64(y)) {
				m.lastY = msg.Y
			}
			return m, nil
		case tea.MouseButtonRight:
			if m.session.Active() {
				return m.endDrag(true)
			}
			return m, nil
		case tea.MouseButtonWheelUp:
			if !m.session.Active() {
				m.list.ScrollBy(-float64(m.list.style.rowHeight()))
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if !m.session.Active() {
				m.list.ScrollBy(float64(m.list.style.rowHeight()))
			}
			return m, nil
		}

	case tea.MouseActionMotion:
		if !m.session.Active() {
			return m, nil
		}
		dy := msg.Y - m.lastY
		if dy == 0 {
			return m, nil
		}
		m.lastY = msg.Y
		m.session.Drag(float64(dy))
		m.list.selected = m.session.Dragging()
		return m, nil

	case tea.MouseActionRelease:
		// X10 mouse mode does not report which button was released.
		if m.session.Active() {
			return m.endDrag(false)
		}
	}
	return m, nil
}

// endDrag finishes the gesture, saves the new order and starts the drop animation.
func (m appModel) endDrag(canceled bool) (tea.Model, tea.Cmd) {
	index := m.session.Dragging()
	var settling bool
	if canceled {
		settling = m.session.Cancel()
	} else {
		settling = m.session.End()
	}
	if index != reorder.NoIndex {
		m.list.selected = index
	}
	log.Printf("tui: drag finished canceled=%v settling=%v", canceled, settling)
	m.commitOrder()
	if settling {
		return m, settleFrameCmd(m.session.Settler().Generation())
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.session.Active() {
			m.session.Cancel()
			m.commitOrder()
		}
		m.saveState()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.session.Active() {
			return m.endDrag(true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	// Keyboard edits are ignored while the mouse owns the list.
	if m.session.Active() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.list.selected > 0 {
			m.list.selected--
		}
		m.list.ensureVisible(m.list.selected)

	case key.Matches(msg, m.keys.Down):
		if m.list.selected < len(m.list.items)-1 {
			m.list.selected++
		}
		m.list.ensureVisible(m.list.selected)

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelected(1)

	case key.Matches(msg, m.keys.Style):
		if m.list.style == listStyleRows {
			m.list.style = listStyleCards
		} else {
			m.list.style = listStyleRows
		}
		m.list.clampTop()
		m.list.ensureVisible(m.list.selected)
		m.saveListStyle()
	}
	return m, nil
}

// moveSelected moves the selected category by step rows and saves the order.
func (m *appModel) moveSelected(step int) {
	id := m.list.selectedID()
	if id == "" {
		return
	}
	ids, err := store.MoveID(m.list.ids(), id, m.list.selected+step)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	to := m.list.selected
	for i, x := range ids {
		if x == id {
			to = i
		}
	}
	if to == m.list.selected {
		return
	}
	m.list.Move(m.list.selected, to)
	m.list.ensureVisible(m.list.selected)
	m.commitOrder()
}

func (m *appModel) saveListStyle() {
	cfg, err := store.LoadConfig()
	if err != nil {
		return
	}
	if cfg.TUI == nil {
		cfg.TUI = &store.TUIConfig{}
	}
	cfg.TUI.Lists = string(m.list.style)
	if err := store.SaveConfig(cfg); err != nil {
		m.setStatus("save config: "+err.Error(), true)
	}
}
