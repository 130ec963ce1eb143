package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorGreen)
	if c := s.GetCell(5, 5); c.Rune != '█' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}
	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %q", c.Color)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hé!", ColorYellow)

	for i, ch := range []rune("Hé!") {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("cell %d = %+v, want %q", i, c, ch)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5), ColorGray)

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' || s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Errorf("corners wrong:\n%s", s.String())
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("edges wrong")
	}
	if s.GetCell(5, 4).Color != ColorGray {
		t.Error("box should carry its color")
	}
	if s.Get(5, 2) != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 || s.String() != "    " {
		t.Errorf("after Resize String() = %q", s.String())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 2, 2)
	if !r.Contains(1, 1) || !r.Contains(2, 2) || r.Contains(3, 1) {
		t.Error("Contains wrong at edges")
	}
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 {
		t.Error("Clamp wrong")
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Errorf("Has() wrong: %v", f.Actions)
	}
	if len(f.Order) != 2 || f.Order[0] != ActionUp || f.Order[1] != ActionLeft {
		t.Errorf("Order = %v", f.Order)
	}
	f.Clear()
	if f.Has(ActionUp) || len(f.Order) != 0 {
		t.Error("Clear should drop everything")
	}
	if ActionRespawn.String() != "Respawn" || Action(99).String() != "Unknown" {
		t.Error("String() names wrong")
	}
}
