package reorder

import (
	"context"
	"time"
)

// ScrollQueue is a single-producer/single-consumer mailbox of scroll deltas.
//
// It holds at most one pending request. Offering while a request is pending replaces
// it: each drag sample recomputes overscroll from live geometry, so only the latest
// value matters.
type ScrollQueue struct {
	ch chan float64
}

func NewScrollQueue() *ScrollQueue {
	return &ScrollQueue{ch: make(chan float64, 1)}
}

// Offer enqueues delta without blocking.
func (q *ScrollQueue) Offer(delta float64) {
	if delta == 0 {
		return
	}
	for {
		select {
		case q.ch <- delta:
			return
		default:
		}
		// Full: drop the stale request and retry. The consumer may win the race and
		// drain it first, in which case the next send succeeds.
		select {
		case <-q.ch:
		default:
		}
	}
}

// Receive exposes the consumer side.
func (q *ScrollQueue) Receive() <-chan float64 { return q.ch }

// Pending reports whether a request is waiting.
func (q *ScrollQueue) Pending() bool { return len(q.ch) > 0 }

// PumpConfig controls auto-scroll pacing.
type PumpConfig struct {
	// Interval is the minimum time between two applied scrolls.
	// Default: 40ms
	Interval time.Duration
}

func (c PumpConfig) withDefaults() PumpConfig {
	if c.Interval <= 0 {
		c.Interval = 40 * time.Millisecond
	}
	return c
}

// Pump drains a ScrollQueue into a Scroller for as long as its context lives.
type Pump struct {
	queue  *ScrollQueue
	target Scroller
	cfg    PumpConfig
	logf   Logger
}

func NewPump(queue *ScrollQueue, target Scroller, cfg PumpConfig) *Pump {
	return &Pump{
		queue:  queue,
		target: target,
		cfg:    cfg.withDefaults(),
	}
}

// SetLogger installs a trace hook. Must be called before Run.
func (p *Pump) SetLogger(l Logger) { p.logf = l }

// Run blocks until ctx is done. It is the only goroutine that calls target.ScrollBy.
func (p *Pump) Run(ctx context.Context) error {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case delta := <-p.queue.Receive():
			if wait := p.cfg.Interval - time.Since(last); !last.IsZero() && wait > 0 {
				t := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					t.Stop()
					return nil
				case <-t.C:
				}
				// A newer request may have arrived while we were waiting.
				select {
				case newer := <-p.queue.Receive():
					delta = newer
				default:
				}
			}
			if p.logf != nil {
				p.logf("reorder: autoscroll delta=%.1f", delta)
			}
			p.target.ScrollBy(delta)
			last = time.Now()
		}
	}
}
