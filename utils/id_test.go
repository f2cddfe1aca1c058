package utils

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		for _, n := range []int{1, 4, 8, 20} {
			if got := GenerateID(n); len(got) != n {
				t.Fatalf("GenerateID(%d) returned %d characters: %q", n, len(got), got)
			}
		}
	})

	t.Run("only alphabet characters", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			code := GenerateID(12)
			for _, r := range code {
				if !strings.ContainsRune(CodeAlphabet, r) {
					t.Fatalf("code %q contains %q, outside the alphabet", code, r)
				}
			}
		}
	})

	t.Run("never emits ambiguous glyphs", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			if code := GenerateID(16); strings.ContainsAny(code, "01IO") {
				t.Fatalf("code %q contains an ambiguous glyph", code)
			}
		}
	})
}

func TestNewUUID(t *testing.T) {
	a, b := NewUUID(), NewUUID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
