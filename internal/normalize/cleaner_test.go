package normalize

import (
	"strings"
	"testing"
)

func TestCleanStripsNoise(t *testing.T) {
	raw := strings.Join([]string{
		"Page 3",
		"SECTION II",
		"===========",
		"1. A real question line",
		"42",
		"----",
		"(continued)",
		"www.example.com",
		"© 2024 Example Board",
		"Answer Key",
		"2. Another   question    line",
	}, "\n")

	got := Clean(raw)
	want := "1. A real question line\n2. Another question line"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("a\tb   c\n\n\n\n\nd")
	if strings.Contains(got, "\t") || strings.Contains(got, "  ") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
	if got != "a b c\nd" {
		t.Errorf("Clean() = %q", got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Errorf("Clean(\"\") = %q", got)
	}
	if got := Clean("Page 1\n12\n---"); got != "" {
		t.Errorf("noise-only input = %q", got)
	}
}
