package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
	if got := TruncateRunes("abcdefgh", 4); got != "abcd…" {
		t.Fatalf("expected truncated string with ellipsis, got %q", got)
	}
	if got := TruncateRunes("héllo wörld", 5); got != "héllo…" {
		t.Fatalf("expected rune-aware truncation, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("expected padded string, got %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("expected long string unchanged, got %q", got)
	}
}
