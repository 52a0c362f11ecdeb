package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorRed)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got != "  Hello   " {
		t.Errorf("Row(1) = %q, expected %q", got, "  Hello   ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextCenteredUnicode(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "─█─")

	if got := s.Row(0); got != "   ─█─   " {
		t.Errorf("Row(0) = %q, expected centered runes", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawBox(NewRect(0, 0, 6, 3), ColorWhite)

	expected := []string{
		"┌────┐",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'x')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize() gave %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}
}
