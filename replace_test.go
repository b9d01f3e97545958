package utfkit

import (
	"bytes"
	"testing"

	"github.com/wippyai/utfkit/errors"
)

var marker = []byte{0xEF, 0xBF, 0xBD} // U+FFFD

func TestReplaceInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, nil},
		{"valid passthrough", []byte("hé€"), []byte("hé€")},
		{"overlong pair one marker", []byte{0xC0, 0x80}, marker},
		{"invalid lead per byte", []byte{0xFF, 0xFF}, append(append([]byte{}, marker...), marker...)},
		{"lone continuations per byte", []byte{0x80, 0x80}, append(append([]byte{}, marker...), marker...)},
		{"broken sequence resumes", []byte{0x41, 0xE2, 0x41}, []byte{0x41, 0xEF, 0xBF, 0xBD, 0x41}},
		{"incomplete swallows continuations", []byte{0xF0, 0x9F, 0x41}, []byte{0xEF, 0xBF, 0xBD, 0x41}},
		{"surrogate encoding one marker", []byte{0xED, 0xA0, 0x80, 0x62}, []byte{0xEF, 0xBF, 0xBD, 0x62}},
		{"beyond codespace one marker", []byte{0xF4, 0x90, 0x80, 0x80}, marker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceInvalid(nil, tt.in)
			if err != nil {
				t.Fatalf("ReplaceInvalid(% X) failed: %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ReplaceInvalid(% X) = % X, want % X", tt.in, got, tt.want)
			}
		})
	}
}

func TestReplaceInvalid_TruncatedTail(t *testing.T) {
	got, err := ReplaceInvalid(nil, []byte{0x41, 0xE2, 0x82})
	if errors.KindOf(err) != errors.KindNotEnoughRoom {
		t.Fatalf("error = %v, want not_enough_room", err)
	}
	if !bytes.Equal(got, []byte{0x41}) {
		t.Errorf("partial output = % X, want the bytes before the truncation", got)
	}
}

func TestReplaceInvalid_MarkerCount(t *testing.T) {
	// Three malformed sequences interleaved with four valid codepoints.
	src := []byte{0x41, 0xFF, 0xC3, 0xA9, 0x80, 0xE2, 0x82, 0xAC, 0xED, 0xA0, 0x80, 0x62}

	out, err := ReplaceInvalid(nil, src)
	if err != nil {
		t.Fatalf("ReplaceInvalid failed: %v", err)
	}
	points, err := UTF8To32(nil, out)
	if err != nil {
		t.Fatalf("scrubbed output does not decode: %v", err)
	}
	if len(points) != 7 {
		t.Errorf("output codepoints = %d, want 7 (4 valid + 3 markers)", len(points))
	}
	markers := 0
	for _, cp := range points {
		if cp == ReplacementChar {
			markers++
		}
	}
	if markers != 3 {
		t.Errorf("marker count = %d, want 3", markers)
	}
}

func TestReplaceInvalidWith(t *testing.T) {
	t.Run("ascii marker", func(t *testing.T) {
		got, err := ReplaceInvalidWith(nil, []byte{0x61, 0xFF, 0x62}, '?')
		if err != nil {
			t.Fatalf("ReplaceInvalidWith failed: %v", err)
		}
		if string(got) != "a?b" {
			t.Errorf("output = %q, want \"a?b\"", got)
		}
	})

	t.Run("multibyte marker", func(t *testing.T) {
		got, err := ReplaceInvalidWith(nil, []byte{0xFF}, 0x2639)
		if err != nil {
			t.Fatalf("ReplaceInvalidWith failed: %v", err)
		}
		if string(got) != "☹" {
			t.Errorf("output = %q, want the frowning face", got)
		}
	})

	t.Run("invalid marker rejected", func(t *testing.T) {
		dst := []byte("seed")
		got, err := ReplaceInvalidWith(dst, []byte{0xFF}, 0xD800)
		if errors.KindOf(err) != errors.KindInvalidCodePoint {
			t.Fatalf("error = %v, want invalid_code_point", err)
		}
		if !bytes.Equal(got, dst) {
			t.Errorf("dst modified on rejected marker: % X", got)
		}
	})

	t.Run("appends to dst", func(t *testing.T) {
		got, err := ReplaceInvalidWith([]byte("x: "), []byte{0x80}, '?')
		if err != nil {
			t.Fatalf("ReplaceInvalidWith failed: %v", err)
		}
		if string(got) != "x: ?" {
			t.Errorf("output = %q, want \"x: ?\"", got)
		}
	})
}

func TestReplaceInvalidInString(t *testing.T) {
	got, err := ReplaceInvalidInString("a\xC0\x80b")
	if err != nil {
		t.Fatalf("ReplaceInvalidInString failed: %v", err)
	}
	if got != "a�b" {
		t.Errorf("output = %q, want %q", got, "a�b")
	}

	got, err = ReplaceInvalidInString("clean")
	if err != nil || got != "clean" {
		t.Errorf("clean input = %q, %v; want unchanged, nil", got, err)
	}

	// Repeated calls share pooled scratch buffers; results must not alias.
	first, _ := ReplaceInvalidInString("one\x80")
	second, _ := ReplaceInvalidInString("two\xFF\xFFtail")
	if first != "one�" {
		t.Errorf("first = %q, want %q", first, "one�")
	}
	if second != "two��tail" {
		t.Errorf("second = %q, want %q", second, "two��tail")
	}
}
