package utfkit

import (
	"testing"
	"unicode/utf8"
)

func TestFindInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int
	}{
		{"empty", nil, 0},
		{"ascii", []byte("hello"), 5},
		{"mixed widths", []byte("hé€\U0001F600"), 10},
		{"overlong at start", []byte{0xC0, 0x80}, 0},
		{"defect mid buffer", []byte{0x41, 0x42, 0xFF, 0x43}, 2},
		{"defect after multibyte", []byte{0xC3, 0xA9, 0x80}, 2},
		{"truncated tail", []byte{0x41, 0xE2, 0x82}, 1},
		{"surrogate encoding", []byte{0xED, 0xA0, 0x80}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindInvalid(tt.in); got != tt.want {
				t.Errorf("FindInvalid(% X) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"empty", nil, true},
		{"ascii", []byte("hello"), true},
		{"mixed widths", []byte("hé€\U0001F600"), true},
		{"bom prefixed", []byte{0xEF, 0xBB, 0xBF, 0x41}, true},
		{"overlong", []byte{0xC0, 0x80}, false},
		{"lone continuation", []byte{0x80}, false},
		{"truncated", []byte{0xF0, 0x9F}, false},
		{"surrogate encoding", []byte{0xED, 0xBF, 0xBF}, false},
		{"beyond codespace", []byte{0xF4, 0x90, 0x80, 0x80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.in); got != tt.want {
				t.Errorf("Valid(% X) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidString(t *testing.T) {
	if !ValidString("héllo, \U0001F30D") {
		t.Error("ValidString rejected well-formed text")
	}
	if ValidString("a\xC0\x80b") {
		t.Error("ValidString accepted an overlong encoding")
	}
	if !ValidString("") {
		t.Error("ValidString rejected the empty string")
	}
}

func TestFindInvalidInString(t *testing.T) {
	if got := FindInvalidInString("ab\xFFc"); got != 2 {
		t.Errorf("FindInvalidInString = %d, want 2", got)
	}
	if got := FindInvalidInString("abc"); got != 3 {
		t.Errorf("FindInvalidInString on valid text = %d, want 3", got)
	}
}

// TestValid_StdlibAgreement cross-checks acceptance against the standard
// library over every two-byte buffer. Both sides implement the same
// well-formedness definition, so any disagreement is a defect here.
func TestValid_StdlibAgreement(t *testing.T) {
	p := make([]byte, 2)
	for a := 0; a < 0x100; a++ {
		for b := 0; b < 0x100; b++ {
			p[0], p[1] = byte(a), byte(b)
			if got, want := Valid(p), utf8.Valid(p); got != want {
				t.Fatalf("Valid(% X) = %v, stdlib says %v", p, got, want)
			}
		}
	}
}

func TestValid_StdlibAgreementLonger(t *testing.T) {
	cases := [][]byte{
		{0xE0, 0x80, 0x80},
		{0xE0, 0x9F, 0xBF},
		{0xE0, 0xA0, 0x80},
		{0xED, 0x9F, 0xBF},
		{0xED, 0xA0, 0x80},
		{0xEF, 0xBF, 0xBF},
		{0xF0, 0x80, 0x80, 0x80},
		{0xF0, 0x8F, 0xBF, 0xBF},
		{0xF0, 0x90, 0x80, 0x80},
		{0xF4, 0x8F, 0xBF, 0xBF},
		{0xF4, 0x90, 0x80, 0x80},
		{0xF7, 0xBF, 0xBF, 0xBF},
	}
	for _, p := range cases {
		if got, want := Valid(p), utf8.Valid(p); got != want {
			t.Errorf("Valid(% X) = %v, stdlib says %v", p, got, want)
		}
	}
}
