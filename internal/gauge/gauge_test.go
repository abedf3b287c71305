package gauge

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.5, 0.875}, // 1 - 0.5^3
		{1, 1},
		{-0.2, 0}, // clamped
		{1.7, 1},  // clamped
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestFrameAt(t *testing.T) {
	start := FrameAt(0, 72)
	if start.Score != 0 || start.Done {
		t.Errorf("start frame = %+v", start)
	}
	if math.Abs(start.DashOffset-Circumference) > 1e-9 {
		t.Errorf("start dash offset = %v, want full circumference", start.DashOffset)
	}

	end := FrameAt(Duration, 72)
	if end.Score != 72 {
		t.Errorf("final score = %d, want 72", end.Score)
	}
	if !end.Done {
		t.Error("final frame not marked done")
	}
	wantOffset := Circumference - 0.72*Circumference
	if math.Abs(end.DashOffset-wantOffset) > 1e-9 {
		t.Errorf("final dash offset = %v, want %v", end.DashOffset, wantOffset)
	}

	half := FrameAt(Duration/2, 100)
	if half.Score != 88 { // round(0.875 * 100)
		t.Errorf("halfway score = %d, want 88", half.Score)
	}
}

func TestVerdictColor(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"fairly_paid", "#38A169"},
		{"fairly_overpaid", "#38A169"},
		{"likely_underpaid", "#E53E3E"},
		{"possibly_underpaid", "#D69E2E"},
		{"new_mystery_code", "#38A169"},
	}
	for _, tt := range tests {
		if got := VerdictColor(tt.code); got != tt.want {
			t.Errorf("VerdictColor(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAnimatorRunsToCompletion(t *testing.T) {
	var a Animator
	t0 := time.Now()
	gen := a.Start(72, t0)

	f, ok := a.FrameFor(gen, t0.Add(Duration/4))
	if !ok || f.Done {
		t.Fatalf("mid-run frame = %+v ok=%v", f, ok)
	}

	f, ok = a.FrameFor(gen, t0.Add(Duration))
	if !ok || !f.Done || f.Score != 72 {
		t.Errorf("final frame = %+v ok=%v", f, ok)
	}
	if a.Active() {
		t.Error("animator still active after final frame")
	}
}

func TestAnimatorRestartSupersedes(t *testing.T) {
	var a Animator
	t0 := time.Now()
	old := a.Start(40, t0)
	current := a.Start(90, t0.Add(100*time.Millisecond))

	if _, ok := a.FrameFor(old, t0.Add(200*time.Millisecond)); ok {
		t.Error("stale generation produced a frame after restart")
	}
	if f, ok := a.FrameFor(current, t0.Add(100*time.Millisecond+Duration)); !ok || f.Score != 90 {
		t.Errorf("current generation frame = %+v ok=%v", f, ok)
	}
}

func TestAnimatorResetInvalidatesInFlightRun(t *testing.T) {
	var a Animator
	t0 := time.Now()
	gen := a.Start(72, t0)

	empty := a.Reset()
	if empty.Score != 0 || math.Abs(empty.DashOffset-Circumference) > 1e-9 {
		t.Errorf("reset frame = %+v, want empty gauge", empty)
	}

	// Ticks scheduled before the reset must be dropped.
	if _, ok := a.FrameFor(gen, t0.Add(Duration/2)); ok {
		t.Error("frame from a reset run was accepted")
	}
	if a.Active() {
		t.Error("animator active after reset")
	}
}
