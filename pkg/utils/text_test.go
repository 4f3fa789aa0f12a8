package utils

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"python", 10, "python"},
		{"senior engineer", 6, "senior..."},
		{"Zoë Müller", 3, "Zoë..."},
		{"x", 0, "x"},
		{"x", -1, "x"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("José"); got != 4 {
		t.Errorf("RuneLen = %d, want 4", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"abc", 0, ""},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := TruncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(33.3333); got != 33.33 {
		t.Errorf("got %v", got)
	}
	if got := Round2(0.456); got != 0.46 {
		t.Errorf("got %v", got)
	}
}
