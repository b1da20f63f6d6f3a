package reorder

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig parameterizes the settle animation.
type SpringConfig struct {
	// Frequency is the spring's angular frequency; higher settles faster.
	// Default: 14
	Frequency float64
	// Damping is the damping ratio. Values below 1 would oscillate and are raised to 1.
	// Default: 1 (critically damped)
	Damping float64
	// RestThreshold is the smallest offset still considered visible motion.
	// Default: 0.5
	RestThreshold float64
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Frequency <= 0 {
		c.Frequency = 14
	}
	if c.Damping < 1 {
		c.Damping = 1
	}
	if c.RestThreshold <= 0 {
		c.RestThreshold = 0.5
	}
	return c
}

// SettleState is the displacement of the row that was just dropped.
// PreviousIndex is NoIndex when nothing is settling.
type SettleState struct {
	PreviousIndex int
	Offset        float64
	Velocity      float64
	Target        float64
}

func restState() SettleState {
	return SettleState{PreviousIndex: NoIndex}
}

func (s SettleState) Active() bool { return s.PreviousIndex != NoIndex }

// Advance integrates the spring over dt and returns the next state. Once the offset is
// within the rest threshold of the target the state snaps to rest.
func (s SettleState) Advance(dt time.Duration, cfg SpringConfig) SettleState {
	if !s.Active() {
		return s
	}
	cfg = cfg.withDefaults()
	if math.Abs(s.Offset-s.Target) < cfg.RestThreshold {
		return restState()
	}
	if dt <= 0 {
		return s
	}
	spring := harmonica.NewSpring(dt.Seconds(), cfg.Frequency, cfg.Damping)
	s.Offset, s.Velocity = spring.Update(s.Offset, s.Velocity, s.Target)
	if math.Abs(s.Offset-s.Target) < cfg.RestThreshold {
		return restState()
	}
	return s
}

// Settler owns the single in-flight settle animation.
//
// Each Start bumps a generation counter; frame callbacks carry the generation they were
// scheduled for, and Step ignores stale ones. That is how a superseded animation gets
// canceled without waiting for it.
type Settler struct {
	cfg   SpringConfig
	state SettleState
	gen   uint64
}

func NewSettler(cfg SpringConfig) *Settler {
	return &Settler{cfg: cfg.withDefaults(), state: restState()}
}

// Start begins settling row index from offset toward zero and returns the generation
// the caller should tag frame callbacks with.
func (s *Settler) Start(index int, offset float64) uint64 {
	s.gen++
	if index == NoIndex || math.Abs(offset) < s.cfg.RestThreshold {
		s.state = restState()
		return s.gen
	}
	s.state = SettleState{PreviousIndex: index, Offset: offset}
	return s.gen
}

// Cancel drops any in-flight settle.
func (s *Settler) Cancel() {
	s.gen++
	s.state = restState()
}

// Step advances the animation if gen is current. It reports whether the animation is
// still running and more frames should be scheduled.
func (s *Settler) Step(gen uint64, dt time.Duration) bool {
	if gen != s.gen || !s.state.Active() {
		return false
	}
	s.state = s.state.Advance(dt, s.cfg)
	return s.state.Active()
}

func (s *Settler) Active() bool { return s.state.Active() }

func (s *Settler) Generation() uint64 { return s.gen }

func (s *Settler) State() SettleState { return s.state }

// Offset returns the settle offset for index, or 0 when that row is not settling.
func (s *Settler) Offset(index int) float64 {
	if !s.state.Active() || s.state.PreviousIndex != index {
		return 0
	}
	return s.state.Offset
}
