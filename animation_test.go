package glaze

import (
	"math"
	"testing"
)

func TestAnimationReachesEnd(t *testing.T) {
	a := NewAnimation(0, 100, 1.0, Linear)

	a.Update(0.5)
	if math.Abs(a.Value()-50) > 1e-6 {
		t.Errorf("midpoint = %f, want 50", a.Value())
	}

	a.Update(0.5)
	if !a.IsFinished() {
		t.Fatal("not finished after full duration")
	}
	if math.Abs(a.Value()-100) > 1e-6 {
		t.Errorf("end = %f, want 100", a.Value())
	}
	if a.Progress() != 1 {
		t.Errorf("progress = %f, want 1", a.Progress())
	}
}

func TestAnimationClampsOvershoot(t *testing.T) {
	a := NewAnimation(0, 10, 0.5, Linear)
	a.Update(5)
	if a.Value() != 10 {
		t.Errorf("value = %f, want 10 (clamped)", a.Value())
	}
	// Further updates hold the end value.
	a.Update(1)
	if a.Value() != 10 {
		t.Errorf("value after extra update = %f", a.Value())
	}
}

func TestAnimationReverse(t *testing.T) {
	a := NewAnimation(0, 100, 1.0, Linear)
	a.Reverse = true

	a.Update(0.25)
	if math.Abs(a.Value()-75) > 1e-6 {
		t.Errorf("reverse at 25%% = %f, want 75", a.Value())
	}
}

func TestAnimationLoopCarriesOvershoot(t *testing.T) {
	a := NewAnimation(0, 100, 1.0, Linear)
	a.Loop = true

	// 1.25s into a 1s loop lands at 0.25 of the next cycle.
	a.Update(1.25)
	if math.Abs(a.Value()-25) > 1e-6 {
		t.Errorf("looped value = %f, want 25", a.Value())
	}
	if a.IsFinished() {
		t.Error("looping animation should keep running after wrap")
	}
}

func TestAnimationYoyoAlternates(t *testing.T) {
	a := NewAnimation(0, 100, 1.0, Linear)
	a.Yoyo = true

	// First cycle forward, then the wrap flips direction.
	a.Update(0.5)
	if math.Abs(a.Value()-50) > 1e-6 {
		t.Fatalf("forward half = %f, want 50", a.Value())
	}

	a.Update(0.75) // 1.25 total: 0.25 into the backward leg
	if math.Abs(a.Value()-75) > 1e-6 {
		t.Errorf("backward leg = %f, want 75", a.Value())
	}
}

func TestAnimationResetRestoresStart(t *testing.T) {
	a := NewAnimation(10, 20, 1.0, EaseOutQuad)
	a.Update(0.7)
	a.Reset()

	if a.Value() != 10 {
		t.Errorf("value after reset = %f, want 10", a.Value())
	}
	if a.IsFinished() {
		t.Error("reset animation should be running")
	}
	if !a.IsRunning() {
		t.Error("IsRunning = false after reset")
	}
}

func TestAnimationSetters(t *testing.T) {
	a := NewAnimation(0, 10, 1.0, Linear)
	a.SetStart(100)
	a.SetEnd(200)
	a.SetDuration(2.0)
	a.SetEasing(EaseInQuad)

	a.Update(2.0)
	if math.Abs(a.Value()-200) > 1e-6 {
		t.Errorf("value = %f, want 200 after retarget", a.Value())
	}
}

func TestSpringStartsAtRest(t *testing.T) {
	s := NewSpring(50, 170, 26, 1)
	if !s.IsAtRest() {
		t.Fatal("spring should start at rest on its target")
	}
	s.Update(0.016)
	if s.Value() != 50 || s.Velocity() != 0 {
		t.Error("resting spring moved with no disturbance")
	}
}

func TestSpringConvergesToTarget(t *testing.T) {
	s := Gentle(0)
	s.SetTarget(100)

	for i := 0; i < 2000; i++ {
		s.Update(1.0 / 120)
	}
	if !s.IsAtRest() {
		t.Fatalf("spring did not settle: pos=%f vel=%f", s.Value(), s.Velocity())
	}
	if math.Abs(s.Value()-100) > 0.01 {
		t.Errorf("settled at %f, want 100", s.Value())
	}
}

func TestSpringWobblyOvershoots(t *testing.T) {
	s := Wobbly(0)
	s.SetTarget(100)

	overshot := false
	for i := 0; i < 2000; i++ {
		if s.Update(1.0/120) > 100 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("underdamped spring never overshot its target")
	}
}

func TestSpringSlowDoesNotOvershoot(t *testing.T) {
	s := Slow(0)
	s.SetTarget(100)

	for i := 0; i < 4000; i++ {
		if v := s.Update(1.0 / 120); v > 100.01 {
			t.Fatalf("overdamped spring overshot to %f at step %d", v, i)
		}
	}
}

func TestSpringSetValueTeleports(t *testing.T) {
	s := Stiff(0)
	s.SetTarget(100)
	s.Update(0.1)

	s.SetValue(100)
	if s.Velocity() != 0 {
		t.Error("SetValue should zero velocity")
	}
	if !s.IsAtRest() {
		t.Error("teleported spring should be at rest on target")
	}
}

func TestSpringRetargetKeepsMomentum(t *testing.T) {
	s := Gentle(0)
	s.SetTarget(100)
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}
	v := s.Velocity()
	s.SetTarget(-100)
	if s.Velocity() != v {
		t.Error("SetTarget should not modify velocity")
	}
	if s.IsFinished() {
		t.Error("retargeted spring should not be finished")
	}
}
