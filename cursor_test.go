package utfkit

import (
	"reflect"
	"testing"

	"github.com/wippyai/utfkit/errors"
)

func TestCursor_WalkForward(t *testing.T) {
	p := []byte("hé€\U0001F600")
	c, err := NewCursor(p, 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}

	var got []rune
	for c.Pos() < len(p) {
		cp, err := c.Rune()
		if err != nil {
			t.Fatalf("Rune at %d failed: %v", c.Pos(), err)
		}
		got = append(got, cp)
		if err := c.Next(); err != nil {
			t.Fatalf("Next at %d failed: %v", c.Pos(), err)
		}
	}

	want := []rune{0x68, 0xE9, 0x20AC, 0x1F600}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("forward walk = %v, want %v", got, want)
	}
}

func TestCursor_WalkBackward(t *testing.T) {
	p := []byte("hé€\U0001F600")
	c, err := NewCursor(p, len(p))
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}

	var got []rune
	for c.Pos() > 0 {
		if err := c.Prev(); err != nil {
			t.Fatalf("Prev at %d failed: %v", c.Pos(), err)
		}
		cp, err := c.Rune()
		if err != nil {
			t.Fatalf("Rune at %d failed: %v", c.Pos(), err)
		}
		got = append(got, cp)
	}

	want := []rune{0x1F600, 0x20AC, 0xE9, 0x68}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("backward walk = %v, want %v", got, want)
	}
}

func TestNewCursor_Bounds(t *testing.T) {
	p := []byte("ab")

	if _, err := NewCursor(p, 2); err != nil {
		t.Errorf("NewCursor at end failed: %v", err)
	}
	if _, err := NewCursor(nil, 0); err != nil {
		t.Errorf("NewCursor over empty data failed: %v", err)
	}
	if _, err := NewCursor(p, -1); errors.KindOf(err) != errors.KindOutOfRange {
		t.Errorf("NewCursor(-1) error = %v, want out_of_range", err)
	}
	if _, err := NewCursor(p, 3); errors.KindOf(err) != errors.KindOutOfRange {
		t.Errorf("NewCursor(3) error = %v, want out_of_range", err)
	}
}

func TestCursor_RuneDoesNotAdvance(t *testing.T) {
	c, err := NewCursor([]byte("é"), 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}
	if _, err := c.Rune(); err != nil {
		t.Fatalf("Rune failed: %v", err)
	}
	if c.Pos() != 0 {
		t.Errorf("Rune moved the cursor to %d", c.Pos())
	}
}

func TestCursor_FailedStepKeepsPosition(t *testing.T) {
	p := []byte{0x41, 0xFF}
	c, err := NewCursor(p, 1)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}

	if err := c.Next(); errors.KindOf(err) != errors.KindInvalidLead {
		t.Fatalf("Next error = %v, want invalid_lead", err)
	}
	if c.Pos() != 1 {
		t.Errorf("position after failed Next = %d, want 1", c.Pos())
	}

	start, err := NewCursor(p, 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}
	if err := start.Prev(); errors.KindOf(err) != errors.KindNotEnoughRoom {
		t.Fatalf("Prev at start error = %v, want not_enough_room", err)
	}
	if start.Pos() != 0 {
		t.Errorf("position after failed Prev = %d, want 0", start.Pos())
	}
}

func TestCursor_Equal(t *testing.T) {
	p := []byte("héllo")

	a, err := NewCursor(p, 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}
	b, err := NewCursor(p, 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}

	eq, err := a.Equal(b)
	if err != nil || !eq {
		t.Errorf("cursors at the same offset: Equal = %v, %v; want true, nil", eq, err)
	}

	if err := b.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	eq, err = a.Equal(b)
	if err != nil || eq {
		t.Errorf("cursors at different offsets: Equal = %v, %v; want false, nil", eq, err)
	}

	other, err := NewCursor([]byte("héllo"), 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}
	if _, err := a.Equal(other); errors.KindOf(err) != errors.KindRangeMismatch {
		t.Errorf("cursors over different sequences: error = %v, want range_mismatch", err)
	}

	tail, err := NewCursor(p[1:], 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}
	if _, err := a.Equal(tail); errors.KindOf(err) != errors.KindRangeMismatch {
		t.Errorf("cursor over a subrange: error = %v, want range_mismatch", err)
	}
}

func TestCursor_Clone(t *testing.T) {
	p := []byte("héllo")
	c, err := NewCursor(p, 0)
	if err != nil {
		t.Fatalf("NewCursor failed: %v", err)
	}

	d := c.Clone()
	eq, err := c.Equal(d)
	if err != nil || !eq {
		t.Fatalf("clone does not compare equal: %v, %v", eq, err)
	}

	if err := d.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if c.Pos() != 0 {
		t.Errorf("advancing the clone moved the original to %d", c.Pos())
	}
	if d.Pos() != 1 {
		t.Errorf("clone position = %d, want 1", d.Pos())
	}
}
