package compose

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
		{5*1024*1024 + 512*1024, "5.5 MB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.size); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime("not a timestamp"); got != "" {
		t.Errorf("Expected empty string for bad input, got %q", got)
	}
	if got := FormatTime(""); got != "" {
		t.Errorf("Expected empty string for empty input, got %q", got)
	}

	got := FormatTime("2025-06-01T14:05:00Z")
	if len(got) != 5 || got[2] != ':' {
		t.Errorf("Expected HH:MM shape, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("garbage"); got != "" {
		t.Errorf("Expected empty string for bad input, got %q", got)
	}
	if got := FormatDate("2025-06-01T00:00:00Z"); got == "" {
		t.Error("Expected a date label for valid input")
	}
}

func TestSnippet_ShortContentUnchanged(t *testing.T) {
	if got := Snippet("hello"); got != "hello" {
		t.Errorf("Short content must pass through, got %q", got)
	}

	exact := strings.Repeat("x", 120)
	if got := Snippet(exact); got != exact {
		t.Error("Content at exactly the limit must not be truncated")
	}
}

func TestSnippet_TruncatesWithEllipsis(t *testing.T) {
	long := strings.Repeat("x", 121)
	got := Snippet(long)

	if !strings.HasSuffix(got, "…") {
		t.Fatalf("Expected ellipsis suffix, got %q", got)
	}
	if got != strings.Repeat("x", 120)+"…" {
		t.Errorf("Expected 120 characters plus ellipsis, got %d bytes", len(got))
	}
}

func TestSnippet_CountsGraphemes(t *testing.T) {
	// Multi-byte clusters must never be split mid-rune.
	long := strings.Repeat("é", 130)
	got := Snippet(long)

	body := strings.TrimSuffix(got, "…")
	if body == got {
		t.Fatal("Expected truncation of over-long grapheme content")
	}
	if n := uniseg.GraphemeClusterCount(body); n != 120 {
		t.Errorf("Expected 120 grapheme clusters, got %d", n)
	}
}
