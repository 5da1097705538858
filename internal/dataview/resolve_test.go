package dataview

import "testing"

func TestMapField_Nested(t *testing.T) {
	row := Row{"a": map[string]any{"b": "v"}}

	got, ok := MapField(row, "a.b")
	if !ok {
		t.Fatal("expected a.b to resolve")
	}
	if got != "v" {
		t.Fatalf("got %v, want v", got)
	}
}

func TestMapField_MissingLeaf(t *testing.T) {
	row := Row{"a": map[string]any{}}

	if _, ok := MapField(row, "a.b"); ok {
		t.Fatal("expected a.b to be unresolved")
	}
}

func TestMapField_MissingIntermediate(t *testing.T) {
	row := Row{"a": map[string]any{"b": map[string]any{"c": 1}}}

	if _, ok := MapField(row, "x.b.c"); ok {
		t.Fatal("expected x.b.c to be unresolved")
	}
}

func TestMapField_NilIntermediate(t *testing.T) {
	row := Row{"a": nil}

	if _, ok := MapField(row, "a.b"); ok {
		t.Fatal("expected resolution through nil to short-circuit")
	}
}

func TestMapField_ScalarIntermediate(t *testing.T) {
	row := Row{"a": 42}

	if _, ok := MapField(row, "a.b"); ok {
		t.Fatal("expected resolution through a scalar to short-circuit")
	}
}

func TestMapField_TopLevel(t *testing.T) {
	row := Row{"name": "ada"}

	got, ok := MapField(row, "name")
	if !ok || got != "ada" {
		t.Fatalf("got %v (ok=%v), want ada", got, ok)
	}
}

func TestMapField_NilRow(t *testing.T) {
	if _, ok := MapField(nil, "a"); ok {
		t.Fatal("expected nil row to resolve nothing")
	}
}
