package grid

import "testing"

func TestChangedLinesIdentical(t *testing.T) {
	lines := []string{"a\t1", "b\t2", "c\t3"}
	if got := ChangedLines(lines, lines); got != 0 {
		t.Fatalf("expected 0 changed lines, got %d", got)
	}
}

func TestChangedLinesReplacedRow(t *testing.T) {
	before := []string{"a\t1", "b\t2", "c\t3"}
	after := []string{"a\t1", "b\t99", "c\t3"}
	if got := ChangedLines(before, after); got != 1 {
		t.Fatalf("expected 1 changed line, got %d", got)
	}
}

func TestChangedLinesAppendedRows(t *testing.T) {
	before := []string{"a\t1"}
	after := []string{"a\t1", "b\t2", "c\t3"}
	if got := ChangedLines(before, after); got != 2 {
		t.Fatalf("expected 2 changed lines, got %d", got)
	}
}

func TestChangedLinesDeletedRow(t *testing.T) {
	before := []string{"a\t1", "b\t2"}
	after := []string{"a\t1"}
	if got := ChangedLines(before, after); got != 1 {
		t.Fatalf("expected 1 changed line, got %d", got)
	}
}

func TestChangedLinesFirstLoad(t *testing.T) {
	after := []string{"a\t1", "b\t2"}
	if got := ChangedLines(nil, after); got != 2 {
		t.Fatalf("expected 2 changed lines on first load, got %d", got)
	}
}
