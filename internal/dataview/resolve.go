// Package dataview implements a column-driven table engine: it sorts,
// paginates, and formats arbitrary row collections without knowing their
// shape ahead of time. Rows are accessed through dotted key paths, so the
// same view pipeline works for JSON documents, query results, and API
// payloads alike.
//
// The engine is pure and synchronous: Snapshot is a function of the view
// state and never fails. Asynchronous data lifecycles live in the fetch
// package.
package dataview

import "strings"

// Row is a dynamic record: a possibly nested key-value map. Sources
// normalize whatever they read into this shape.
type Row = map[string]any

// FieldFunc reads the value at a key path from a row. The second return
// reports whether the path resolved. Absent fields are a legitimate,
// common case (optional nested data), never an error.
type FieldFunc[T any] func(row T, path string) (any, bool)

// MapField resolves a dotted key path against a Row by walking nested
// maps. Resolution short-circuits the moment an intermediate segment is
// missing, nil, or not a map.
func MapField(row Row, path string) (any, bool) {
	var cur any = row
	if cur == nil {
		return nil, false
	}
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[seg]
		if !ok || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}
