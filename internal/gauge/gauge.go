// Package gauge computes the score ring animation: a fixed-duration ease-out
// sweep from zero to the assessed score, plus the verdict color mapping.
// Everything here is deterministic in the supplied time so frames are
// testable without a render loop.
package gauge

import (
	"math"
	"time"
)

// Duration is the full sweep time of one animation run.
const Duration = 1000 * time.Millisecond

// Circumference of the score ring path; dash offsets are computed against it.
const Circumference = 339.292

// FrameInterval is the tick cadence the terminal renderer drives at.
const FrameInterval = time.Second / 30

// Verdict colors keyed by verdict code. Unrecognized codes fall back to the
// fairly-paid green.
var verdictColors = map[string]string{
	"likely_underpaid":   "#E53E3E",
	"possibly_underpaid": "#D69E2E",
	"fairly_paid":        "#38A169",
	"fairly_overpaid":    "#38A169",
}

const fallbackColor = "#38A169"

// VerdictColor returns the gauge color for a verdict code.
func VerdictColor(code string) string {
	if c, ok := verdictColors[code]; ok {
		return c
	}
	return fallbackColor
}

// EaseOutCubic maps linear progress t in [0,1] to eased progress
// 1-(1-t)^3. Inputs outside the range are clamped.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

// Frame is one animation sample.
type Frame struct {
	// Score is the integer to display: round(eased * target).
	Score int
	// Fill is the eased fraction of the full ring, eased * target/100.
	Fill float64
	// DashOffset is the ring stroke offset for Fill.
	DashOffset float64
	// Done marks the final frame.
	Done bool
}

// FrameAt samples the animation for a target score at the given elapsed
// time.
func FrameAt(elapsed time.Duration, target int) Frame {
	t := float64(elapsed) / float64(Duration)
	eased := EaseOutCubic(t)
	fill := eased * float64(target) / 100

	return Frame{
		Score:      int(math.Round(eased * float64(target))),
		Fill:       fill,
		DashOffset: Circumference - fill*Circumference,
		Done:       t >= 1,
	}
}

// Empty is the gauge's resting frame: zero score, no fill.
func Empty() Frame {
	return Frame{DashOffset: Circumference}
}

// Animator tracks one animation run at a time. Each run gets a generation
// number; frames presented with a stale generation are rejected, so a
// restart or reset during an in-flight run cannot write stale display state.
type Animator struct {
	gen    int
	target int
	start  time.Time
	active bool
}

// Start begins a new run toward target and returns its generation. Any
// previous run is implicitly superseded.
func (a *Animator) Start(target int, now time.Time) int {
	a.gen++
	a.target = target
	a.start = now
	a.active = true
	return a.gen
}

// FrameFor samples the run identified by gen. The second return is false
// when gen is stale or the animator has been reset, in which case the caller
// must drop the tick without touching display state.
func (a *Animator) FrameFor(gen int, now time.Time) (Frame, bool) {
	if !a.active || gen != a.gen {
		return Frame{}, false
	}
	f := FrameAt(now.Sub(a.start), a.target)
	if f.Done {
		a.active = false
	}
	return f, true
}

// Reset invalidates any in-flight run and returns the empty frame for the
// caller to display.
func (a *Animator) Reset() Frame {
	a.gen++
	a.active = false
	return Empty()
}

// Active reports whether a run is still producing frames.
func (a *Animator) Active() bool {
	return a.active
}
