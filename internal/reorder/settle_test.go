package reorder

import (
	"math"
	"testing"
	"time"
)

func TestSettleState_AdvanceShrinksMonotonicallyToRest(t *testing.T) {
	cases := []struct {
		name   string
		offset float64
		cfg    SpringConfig
	}{
		{name: "small positive", offset: 3},
		{name: "negative", offset: -120},
		{name: "large", offset: 3000},
		{name: "stiff spring", offset: 80, cfg: SpringConfig{Frequency: 40}},
		{name: "underdamped config is clamped", offset: 200, cfg: SpringConfig{Damping: 0.2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := SettleState{PreviousIndex: 3, Offset: tc.offset}
			const maxTicks = 2000
			ticks := 0
			for st.Active() {
				next := st.Advance(16*time.Millisecond, tc.cfg)
				if math.Abs(next.Offset) >= math.Abs(st.Offset) {
					t.Fatalf("tick %d: magnitude did not shrink (%v -> %v)", ticks, st.Offset, next.Offset)
				}
				if next.Active() && math.Signbit(next.Offset) != math.Signbit(tc.offset) {
					t.Fatalf("tick %d: offset crossed rest (%v)", ticks, next.Offset)
				}
				st = next
				ticks++
				if ticks > maxTicks {
					t.Fatalf("settle did not terminate within %d ticks", maxTicks)
				}
			}
			if st.Offset != 0 || st.PreviousIndex != NoIndex {
				t.Fatalf("expected exact rest; got %+v", st)
			}
		})
	}
}

func TestSettleState_AdvanceWithoutTimeHoldsState(t *testing.T) {
	st := SettleState{PreviousIndex: 1, Offset: 10}
	if got := st.Advance(0, SpringConfig{}); got != st {
		t.Fatalf("expected unchanged state; got %+v", got)
	}
	idle := restState()
	if got := idle.Advance(time.Second, SpringConfig{}); got.Active() {
		t.Fatalf("expected idle state to stay idle")
	}
}

func TestSettler_StartBelowThresholdDoesNotAnimate(t *testing.T) {
	s := NewSettler(SpringConfig{RestThreshold: 1})
	s.Start(2, 0.4)
	if s.Active() {
		t.Fatalf("expected no settle for sub-threshold offset")
	}
	s.Start(NoIndex, 50)
	if s.Active() {
		t.Fatalf("expected no settle without a row")
	}
}

func TestSettler_StaleGenerationIsDropped(t *testing.T) {
	s := NewSettler(SpringConfig{})
	first := s.Start(1, 40)
	second := s.Start(3, -25)
	if first == second {
		t.Fatalf("expected a new generation per start")
	}

	if s.Step(first, 16*time.Millisecond) {
		t.Fatalf("expected stale step to be ignored")
	}
	if got := s.Offset(3); got != -25 {
		t.Fatalf("expected stale step to leave state untouched; got %v", got)
	}
	if got := s.Offset(1); got != 0 {
		t.Fatalf("expected superseded row at rest; got %v", got)
	}
	if !s.Step(second, 16*time.Millisecond) {
		t.Fatalf("expected current step to keep animating")
	}

	s.Cancel()
	if s.Active() || s.Step(second, 16*time.Millisecond) {
		t.Fatalf("expected cancel to stop the animation")
	}
}
