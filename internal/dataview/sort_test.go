package dataview

import (
	"reflect"
	"testing"
)

func namedRows(names ...string) []Row {
	rows := make([]Row, len(names))
	for i, n := range names {
		rows[i] = Row{"name": n, "idx": i}
	}
	return rows
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r["name"].(string)
	}
	return out
}

func TestNextSortState_CyclesOnSameKey(t *testing.T) {
	s := NextSortState(SortState{}, "name")
	if s.Key != "name" || s.Direction != Asc {
		t.Fatalf("first click: got %+v, want name asc", s)
	}

	s = NextSortState(s, "name")
	if s.Key != "name" || s.Direction != Desc {
		t.Fatalf("second click: got %+v, want name desc", s)
	}

	s = NextSortState(s, "name")
	if s.Active() {
		t.Fatalf("third click: got %+v, want inactive", s)
	}
}

func TestNextSortState_DifferentKeyRestartsAsc(t *testing.T) {
	s := SortState{Key: "name", Direction: Desc}

	s = NextSortState(s, "age")
	if s.Key != "age" || s.Direction != Asc {
		t.Fatalf("got %+v, want age asc", s)
	}
}

func TestSortRows_AscDescReverse(t *testing.T) {
	rows := namedRows("mango", "apple", "zebra", "kiwi")

	asc := SortRows(rows, MapField, SortState{Key: "name", Direction: Asc})
	if got := names(asc); !reflect.DeepEqual(got, []string{"apple", "kiwi", "mango", "zebra"}) {
		t.Fatalf("asc order: %v", got)
	}

	desc := SortRows(rows, MapField, SortState{Key: "name", Direction: Desc})
	if got := names(desc); !reflect.DeepEqual(got, []string{"zebra", "mango", "kiwi", "apple"}) {
		t.Fatalf("desc order: %v", got)
	}
}

func TestSortRows_InactiveKeepsInput(t *testing.T) {
	rows := namedRows("b", "a", "c")

	got := SortRows(rows, MapField, SortState{})
	if !reflect.DeepEqual(names(got), []string{"b", "a", "c"}) {
		t.Fatalf("inactive sort changed order: %v", names(got))
	}
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	rows := namedRows("b", "a", "c")

	SortRows(rows, MapField, SortState{Key: "name", Direction: Asc})
	if !reflect.DeepEqual(names(rows), []string{"b", "a", "c"}) {
		t.Fatalf("input mutated: %v", names(rows))
	}
}

func TestSortRows_StableOnTies(t *testing.T) {
	rows := []Row{
		{"group": "x", "idx": 0},
		{"group": "y", "idx": 1},
		{"group": "x", "idx": 2},
		{"group": "x", "idx": 3},
	}

	got := SortRows(rows, MapField, SortState{Key: "group", Direction: Asc})
	idxs := make([]int, len(got))
	for i, r := range got {
		idxs[i] = r["idx"].(int)
	}
	if !reflect.DeepEqual(idxs, []int{0, 2, 3, 1}) {
		t.Fatalf("tie order not preserved: %v", idxs)
	}
}

func TestSortRows_UnresolvedCompareEqual(t *testing.T) {
	rows := []Row{
		{"n": 2},
		{},
		{"n": 1},
	}

	got := SortRows(rows, MapField, SortState{Key: "n", Direction: Asc})
	// The row without the key compares equal to its neighbors; the stable
	// sort must not panic and must keep every row.
	if len(got) != 3 {
		t.Fatalf("lost rows: %d", len(got))
	}
}

func TestSortRows_Numeric(t *testing.T) {
	rows := []Row{{"n": 10}, {"n": 2}, {"n": 33}}

	got := SortRows(rows, MapField, SortState{Key: "n", Direction: Asc})
	vals := []int{got[0]["n"].(int), got[1]["n"].(int), got[2]["n"].(int)}
	if !reflect.DeepEqual(vals, []int{2, 10, 33}) {
		t.Fatalf("numeric order: %v", vals)
	}
}

func TestSortRows_MixedNumericKinds(t *testing.T) {
	rows := []Row{{"n": float64(1.5)}, {"n": int64(1)}, {"n": 2}}

	got := SortRows(rows, MapField, SortState{Key: "n", Direction: Asc})
	if got[0]["n"] != int64(1) || got[1]["n"] != float64(1.5) || got[2]["n"] != 2 {
		t.Fatalf("mixed numeric order: %v", got)
	}
}
