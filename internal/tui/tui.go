package tui

import (
	"context"
	"io"
	"log"
	"time"

	"hypercart/internal/reorder"
	"hypercart/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Options configures the interactive TUI.
type Options struct {
	// LogFile receives debug logs; empty discards them.
	LogFile string

	ScrollInterval time.Duration
	MaxScrollStep  float64
	Spring         reorder.SpringConfig

	// ListStyle is "rows" or "cards"; Theme is "light", "dark" or "auto".
	ListStyle string
	Theme     string
}

// programScroller forwards auto-scroll steps from the pump goroutine into the
// program's update loop, where the list is actually scrolled.
type programScroller struct {
	p *tea.Program
}

func (s programScroller) ScrollBy(delta float64) {
	s.p.Send(autoScrollMsg{delta: delta})
}

func Run(ctx context.Context, s store.Store, opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "hypercart")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	queue := reorder.NewScrollQueue()
	m, err := newAppModel(ctx, s, queue, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(gctx))
	pump := reorder.NewPump(queue, programScroller{p: p}, reorder.PumpConfig{Interval: opts.ScrollInterval})
	pump.SetLogger(log.Printf)

	g.Go(func() error {
		return pump.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		final, err := p.Run()
		if fm, ok := final.(appModel); ok {
			fm.saveState()
		}
		return err
	})
	return g.Wait()
}
