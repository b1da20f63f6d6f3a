package tui

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"hypercart/internal/reorder"
	"hypercart/internal/store"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerLines = 2
	footerLines = 2

	settleFrame = 16 * time.Millisecond
)

type reloadTickMsg struct{}

// autoScrollMsg is one paced scroll step delivered by the pump.
type autoScrollMsg struct{ delta float64 }

// settleFrameMsg advances the drop animation started with generation gen.
type settleFrameMsg struct{ gen uint64 }

type appModel struct {
	ctx   context.Context
	store store.Store

	width  int
	height int

	list    *categoryList
	session *reorder.Session
	queue   *reorder.ScrollQueue

	// lastY is the terminal row of the previous drag sample.
	lastY int

	keys     keyMap
	help     help.Model
	showHelp bool

	status    string
	statusErr bool

	lastModTime time.Time
}

func newAppModel(ctx context.Context, s store.Store, queue *reorder.ScrollQueue, opts Options) (appModel, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	m := appModel{
		ctx:   ctx,
		store: s,
		list:  newCategoryList(parseListStyle(opts.ListStyle)),
		queue: queue,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.session = reorder.NewSession(m.list, m.list.Move, queue, reorder.NewSettler(opts.Spring), reorder.Options{
		MaxScrollStep: opts.MaxScrollStep,
		Logger:        log.Printf,
	})

	if err := m.reloadFromDisk(); err != nil {
		return appModel{}, err
	}
	// UI state is best effort.
	if st, err := s.LoadTUIState(); err == nil {
		m.showHelp = st.ShowHelp
		m.list.selectID(st.SelectedCategoryID)
	}
	return m, nil
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func settleFrameCmd(gen uint64) tea.Cmd {
	return tea.Tick(settleFrame, func(time.Time) tea.Msg { return settleFrameMsg{gen: gen} })
}

func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	h := height - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	m.list.height = h
	m.list.clampTop()
}

func (m *appModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// commitOrder writes the on-screen order to the store. On failure the list is
// reloaded so it shows what is actually stored.
func (m *appModel) commitOrder() {
	if !m.list.dirty {
		return
	}
	m.list.dirty = false
	if err := m.store.SetCategoryOrder(m.ctx, m.list.ids()); err != nil {
		log.Printf("tui: commit order: %v", err)
		m.setStatus(fmt.Sprintf("save failed: %v", err), true)
		_ = m.reloadFromDisk()
		return
	}
	m.captureStoreModTime()
	log.Printf("tui: order saved %v", m.list.order())
	m.setStatus("order saved", false)
}

func (m *appModel) saveState() {
	_ = m.store.SaveTUIState(&store.TUIState{
		SelectedCategoryID: m.list.selectedID(),
		ShowHelp:           m.showHelp,
	})
}

func (m *appModel) storePaths() []string {
	base := filepath.Join(m.store.Dir, "hypercart.sqlite")
	return []string{base, base + "-wal"}
}

func (m *appModel) captureStoreModTime() {
	m.lastModTime = latestModTime(m.storePaths())
}

func (m *appModel) storeChanged() bool {
	return latestModTime(m.storePaths()).After(m.lastModTime)
}

func latestModTime(paths []string) time.Time {
	var out time.Time
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		if st.ModTime().After(out) {
			out = st.ModTime()
		}
	}
	return out
}

func (m *appModel) reloadFromDisk() error {
	cs, err := m.store.ListCategories(m.ctx)
	if err != nil {
		return err
	}
	counts, err := m.store.ProductCounts(m.ctx)
	if err != nil {
		return err
	}
	m.list.setItems(cs, counts)
	m.captureStoreModTime()
	return nil
}
