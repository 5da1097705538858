package viewdef

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

func writeDef(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "view.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDef(t, `
title: Movies
items_per_page: 15
columns:
  - key: title
    label: Title
    sortable: true
  - key: producer.name
    sortable: true
  - key: winner
`)

	def, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if def.Title != "Movies" || def.ItemsPerPage != 15 {
		t.Fatalf("definition: %+v", def)
	}

	cols := def.DataColumns()
	if len(cols) != 3 {
		t.Fatalf("columns: %d", len(cols))
	}
	if cols[0].Label != "Title" || !cols[0].Sortable {
		t.Fatalf("col 0: %+v", cols[0])
	}
	// label derived from the last key segment
	if cols[1].Label != "Name" {
		t.Fatalf("col 1 label = %q", cols[1].Label)
	}
	if cols[2].Sortable {
		t.Fatalf("col 2 should not be sortable: %+v", cols[2])
	}
}

func TestLoad_RejectsDuplicateKeys(t *testing.T) {
	path := writeDef(t, `
columns:
  - key: a
  - key: a
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoad_RejectsMissingKey(t *testing.T) {
	path := writeDef(t, `
columns:
  - label: Nameless
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestInfer(t *testing.T) {
	rows := []dataview.Row{
		{"year": 1990, "movie_title": "x", "winner": true},
	}

	cols := Infer(rows)
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	if !reflect.DeepEqual(keys, []string{"movie_title", "winner", "year"}) {
		t.Fatalf("inferred keys: %v", keys)
	}
	if cols[0].Label != "Movie title" {
		t.Fatalf("label: %q", cols[0].Label)
	}
	for _, c := range cols {
		if !c.Sortable {
			t.Fatalf("inferred column not sortable: %+v", c)
		}
	}
}

func TestInfer_Empty(t *testing.T) {
	if cols := Infer(nil); cols != nil {
		t.Fatalf("expected nil, got %v", cols)
	}
}
