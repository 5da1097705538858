package dataview

import (
	"testing"
	"time"
)

func TestFormat_Booleans(t *testing.T) {
	if got := Format(true); got != "Yes" {
		t.Fatalf("Format(true) = %q, want Yes", got)
	}
	if got := Format(false); got != "No" {
		t.Fatalf("Format(false) = %q, want No", got)
	}
}

func TestFormat_Nil(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Fatalf("Format(nil) = %q, want empty", got)
	}
}

func TestFormat_Numbers(t *testing.T) {
	if got := Format(42); got != "42" {
		t.Fatalf("Format(42) = %q, want 42", got)
	}
	// JSON decoding yields float64; whole numbers must not grow a decimal point
	if got := Format(float64(42)); got != "42" {
		t.Fatalf("Format(42.0) = %q, want 42", got)
	}
	if got := Format(3.5); got != "3.5" {
		t.Fatalf("Format(3.5) = %q, want 3.5", got)
	}
	if got := Format(int64(-7)); got != "-7" {
		t.Fatalf("Format(-7) = %q, want -7", got)
	}
}

func TestFormat_String(t *testing.T) {
	if got := Format("hello"); got != "hello" {
		t.Fatalf("Format(hello) = %q", got)
	}
}

func TestFormat_Time(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := Format(ts); got != "2024-03-01T12:00:00Z" {
		t.Fatalf("Format(time) = %q", got)
	}
}
