package grid

import (
	"testing"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Errorf("expected 'hello...', got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("expected 'short', got %q", got)
	}
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}

func TestPadOrTruncate(t *testing.T) {
	if got := PadOrTruncate("ab", 5); got != "ab   " {
		t.Errorf("expected padded string, got %q", got)
	}
	if got := PadOrTruncate("abcdefgh", 5); got != "ab..." {
		t.Errorf("expected truncated string, got %q", got)
	}
	if got := PadOrTruncate("abcde", 5); got != "abcde" {
		t.Errorf("expected unchanged string, got %q", got)
	}
}

func TestBodyLines(t *testing.T) {
	lines := bodyLines(tableFixture())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Alice\t30" {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func tableFixture() (t dataview.Table) {
	t.Headers = []dataview.HeaderCell{{Key: "name", Label: "Name"}, {Key: "age", Label: "Age"}}
	t.Body = [][]string{{"Alice", "30"}, {"Bob", "25"}}
	return t
}
