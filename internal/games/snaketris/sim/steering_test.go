package sim

import (
	"testing"
	"time"
)

func TestSteeringRejectsReversal(t *testing.T) {
	s := NewSteering(Right)

	if s.Request(Left) {
		t.Error("reversal should be rejected")
	}
	if got := s.Resolve(); got != Right {
		t.Errorf("Resolve() = %v, want right", got)
	}
}

func TestSteeringBuffersOneTurn(t *testing.T) {
	s := NewSteering(Right)

	if !s.Request(Up) {
		t.Fatal("Request(Up) rejected")
	}
	// Left reverses the original heading but not the pending one
	if !s.Request(Left) {
		t.Fatal("Request(Left) after Up should be buffered")
	}
	if got := s.Resolve(); got != Up {
		t.Errorf("first move = %v, want up", got)
	}
	if got := s.Resolve(); got != Left {
		t.Errorf("second move = %v, want left", got)
	}
	if got := s.Resolve(); got != Left {
		t.Errorf("third move = %v, want left", got)
	}
}

func TestSteeringBufferRejectsReversalOfPending(t *testing.T) {
	s := NewSteering(Right)
	s.Request(Up)

	if s.Request(Down) {
		t.Error("Down reverses the pending Up and should be rejected")
	}
	s.Resolve()
	if got := s.Resolve(); got != Up {
		t.Errorf("heading = %v, want up", got)
	}
}

func TestSteeringLatestBufferedWins(t *testing.T) {
	s := NewSteering(Right)
	s.Request(Up)
	s.Request(Left)
	s.Request(Right)

	s.Resolve()
	if got := s.Resolve(); got != Right {
		t.Errorf("second move = %v, want right", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d || d.Opposite() == d {
			t.Errorf("Opposite(%v) = %v", d, d.Opposite())
		}
	}
	if Up.Step(20) != vec(0, 20) || Left.Step(20) != vec(-20, 0) {
		t.Error("Step displacement wrong")
	}
}

func TestCooldownTick(t *testing.T) {
	c := NewCooldown(100 * time.Millisecond)
	ms := time.Millisecond
	steps := []struct {
		dt   time.Duration
		want bool
	}{
		{60 * ms, false},
		{60 * ms, true}, // 20ms carried
		{79 * ms, false},
		{1 * ms, true},
		{250 * ms, true}, // at most once per tick, 50ms carried
		{50 * ms, true},
	}
	for i, s := range steps {
		if got := c.Tick(s.dt); got != s.want {
			t.Errorf("step %d: Tick(%v) = %v, want %v", i, s.dt, got, s.want)
		}
	}

	var zero Cooldown
	if zero.Tick(time.Second) {
		t.Error("zero-period cooldown should never fire")
	}
}

func TestCooldownFor(t *testing.T) {
	ms := time.Millisecond
	if got := CooldownFor(0.5, 0, 200*ms, 5*ms); got != 140*ms {
		t.Errorf("CooldownFor(0.5, 0) = %v, want 140ms", got)
	}
	if got := CooldownFor(0, 0, 200*ms, 5*ms); got != 200*ms {
		t.Errorf("CooldownFor(0, 0) = %v, want 200ms", got)
	}
	slow := CooldownFor(0.5, 0, 200*ms, 5*ms)
	fast := CooldownFor(0.5, 2, 200*ms, 5*ms)
	if fast >= slow {
		t.Errorf("swiftness should shorten the cooldown: %v >= %v", fast, slow)
	}
	if got := CooldownFor(1, 10, 200*ms, 5*ms); got != 5*ms {
		t.Errorf("cooldown should floor at the minimum, got %v", got)
	}
}
