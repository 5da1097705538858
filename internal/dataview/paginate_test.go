package dataview

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	if got := TotalPages(5, 2); got != 3 {
		t.Fatalf("TotalPages(5,2) = %d, want 3", got)
	}
	if got := TotalPages(4, 2); got != 2 {
		t.Fatalf("TotalPages(4,2) = %d, want 2", got)
	}
	if got := TotalPages(0, 2); got != 0 {
		t.Fatalf("TotalPages(0,2) = %d, want 0", got)
	}
	if got := TotalPages(1, 10); got != 1 {
		t.Fatalf("TotalPages(1,10) = %d, want 1", got)
	}
}

func TestPageSlice_FiveRowsByTwo(t *testing.T) {
	rows := []int{0, 1, 2, 3, 4}

	if got := PageSlice(rows, 1, 2); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("page 1: %v", got)
	}
	if got := PageSlice(rows, 2, 2); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("page 2: %v", got)
	}
	if got := PageSlice(rows, 3, 2); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("page 3: %v", got)
	}
}

func TestPageSlice_ClampsOutOfRange(t *testing.T) {
	rows := []int{0, 1, 2}

	if got := PageSlice(rows, 0, 2); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("page 0 clamp: %v", got)
	}
	if got := PageSlice(rows, 9, 2); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("page 9 clamp: %v", got)
	}
}

func TestPageSlice_Empty(t *testing.T) {
	if got := PageSlice([]int(nil), 1, 2); len(got) != 0 {
		t.Fatalf("empty input: %v", got)
	}
}
