// Package source adapts record origins (files, Postgres queries, HTTP
// endpoints) into the row collections the data view engine consumes.
// Every source normalizes to the same Result shape so the fetch
// controller and the display surfaces don't care where rows came from.
package source

import (
	"context"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

// Result is the normalized outcome of one source fetch.
type Result struct {
	Rows    []dataview.Row
	Columns []string // column order hint, when the source knows one

	// Paged is set by sources whose server owns pagination. Page is
	// zero-based; the engine converts for display.
	Paged      bool
	Page       int
	TotalPages int
	Total      int
}

// Func loads one Result. It is an alias, not a defined type, so source
// closures plug directly into fetch.Controller without conversion.
type Func = func(ctx context.Context) (Result, error)
