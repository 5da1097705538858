package dataview

import "fmt"

// DefaultItemsPerPage is the page size used when Options doesn't set one.
const DefaultItemsPerPage = 10

const (
	placeholderText = "No data available"
	ascIndicator    = "▲"
	descIndicator   = "▼"
)

// Column describes how to extract, label, and optionally sort one field
// across all rows. Key is the column identity: a dotted path into the row.
// Label is purely presentational.
type Column struct {
	Key        string
	Label      string
	Sortable   bool
	Filterable bool // declared for callers to build on; no engine behavior yet
}

// RemotePage hands page ownership to an external caller: the engine
// renders the rows it is given verbatim and only reports page-change
// requests through OnPageChange. Page is zero-based internally and
// converted to one-based at the display boundary.
type RemotePage struct {
	Page         int
	TotalPages   int
	OnPageChange func(page int)
}

// Options configures a View. The zero value gives a title-less local
// view with pagination enabled at the default page size.
type Options struct {
	Title        string
	ItemsPerPage int
	NoPagination bool
	ShowFilters  bool // reserved, no behavioral effect yet
	Remote       *RemotePage
}

// View composes path resolution, sorting, pagination, and formatting
// into render snapshots for one row collection.
type View[T any] struct {
	rows  []T
	cols  []Column
	field FieldFunc[T]
	opts  Options
	sort  SortState
	page  int // one-based, local mode only
}

// NewView builds a view over rows with the given column descriptors.
// The field function resolves column keys against a row; use MapField
// for dynamic map rows.
func NewView[T any](rows []T, cols []Column, field FieldFunc[T], opts Options) *View[T] {
	if opts.ItemsPerPage < 1 {
		opts.ItemsPerPage = DefaultItemsPerPage
	}
	return &View[T]{rows: rows, cols: cols, field: field, opts: opts, page: 1}
}

// SetRows replaces the row collection, e.g. after a refetch. The local
// page counter is clamped to the new page count.
func (v *View[T]) SetRows(rows []T) {
	v.rows = rows
	if v.Remote() {
		return
	}
	if total := v.TotalPages(); total >= 1 && v.page > total {
		v.page = total
	}
	if v.page < 1 {
		v.page = 1
	}
}

// Remote reports whether page state is externally owned.
func (v *View[T]) Remote() bool { return v.opts.Remote != nil }

// Columns returns the column descriptors in render order.
func (v *View[T]) Columns() []Column { return v.cols }

// Sort returns the current sort state.
func (v *View[T]) Sort() SortState { return v.sort }

// RowCount returns the size of the underlying row collection.
func (v *View[T]) RowCount() int { return len(v.rows) }

// Rows returns the underlying row collection, unsorted and unsliced.
func (v *View[T]) Rows() []T { return v.rows }

// Title returns the view heading.
func (v *View[T]) Title() string { return v.opts.Title }

// CycleSort advances the sort state for the given column key. Unknown or
// unsortable columns are no-ops, as is remote mode: there the caller has
// already ordered the rows server-side and re-sorting one page locally
// would be wrong.
func (v *View[T]) CycleSort(key string) {
	if v.Remote() {
		return
	}
	col, ok := v.column(key)
	if !ok || !col.Sortable {
		return
	}
	v.sort = NextSortState(v.sort, key)
}

// Page returns the current one-based display page.
func (v *View[T]) Page() int {
	if r := v.opts.Remote; r != nil {
		return r.Page + 1
	}
	return v.page
}

// TotalPages returns the one-based page count.
func (v *View[T]) TotalPages() int {
	if r := v.opts.Remote; r != nil {
		return r.TotalPages
	}
	if v.opts.NoPagination {
		return 1
	}
	return TotalPages(len(v.rows), v.opts.ItemsPerPage)
}

// SetPage requests the given one-based page. Locally it mutates the
// owned page counter, clamped to the valid range; in remote mode it only
// notifies the external owner and never mutates its state directly.
func (v *View[T]) SetPage(page int) {
	if r := v.opts.Remote; r != nil {
		if page < 1 || (r.TotalPages > 0 && page > r.TotalPages) {
			return
		}
		if r.OnPageChange != nil {
			r.OnPageChange(page - 1)
		}
		return
	}
	total := v.TotalPages()
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	} else if page > total {
		page = total
	}
	v.page = page
}

// NextPage and PrevPage move one page within bounds.
func (v *View[T]) NextPage() { v.SetPage(v.Page() + 1) }
func (v *View[T]) PrevPage() { v.SetPage(v.Page() - 1) }

// SetRemote records the externally owned page numbers after the owner
// fetched a new slice. No-op for local views.
func (v *View[T]) SetRemote(page, totalPages int) {
	if r := v.opts.Remote; r != nil {
		r.Page = page
		r.TotalPages = totalPages
	}
}

func (v *View[T]) column(key string) (Column, bool) {
	for _, c := range v.cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// HeaderCell is one rendered column header. Indicator carries the sort
// arrow for the active sort column and is empty otherwise.
type HeaderCell struct {
	Key       string
	Label     string
	Sortable  bool
	Indicator string
}

// PageBar describes the pagination controls for a snapshot. Pages lists
// every explicit page button, 1..Total.
type PageBar struct {
	Current int
	Total   int
	HasPrev bool
	HasNext bool
	Pages   []int
}

// Table is the render contract: everything a display surface needs to
// draw the view without re-running the pipeline.
type Table struct {
	Title       string
	Headers     []HeaderCell
	Body        [][]string
	Placeholder string   // set when the body is empty
	Pagination  *PageBar // nil when controls are hidden
	Summary     string   // results count line, empty when pagination is off
}

// Snapshot runs the render pipeline: sort, slice, resolve, format. In
// remote mode sorting and slicing are skipped and the rows render
// verbatim. Missing values degrade to empty cells; an empty row slice
// yields a single placeholder row spanning all columns.
func (v *View[T]) Snapshot() Table {
	t := Table{Title: v.opts.Title}

	for _, c := range v.cols {
		h := HeaderCell{Key: c.Key, Label: c.Label, Sortable: c.Sortable && !v.Remote()}
		if v.sort.Active() && v.sort.Key == c.Key {
			if v.sort.Direction == Desc {
				h.Indicator = descIndicator
			} else {
				h.Indicator = ascIndicator
			}
		}
		t.Headers = append(t.Headers, h)
	}

	rows := v.rows
	if !v.Remote() {
		rows = SortRows(rows, v.field, v.sort)
		if !v.opts.NoPagination {
			rows = PageSlice(rows, v.page, v.opts.ItemsPerPage)
		}
	}

	for _, row := range rows {
		cells := make([]string, len(v.cols))
		for i, c := range v.cols {
			if val, ok := v.field(row, c.Key); ok {
				cells[i] = Format(val)
			}
		}
		t.Body = append(t.Body, cells)
	}
	if len(t.Body) == 0 {
		t.Placeholder = placeholderText
	}

	if !v.opts.NoPagination {
		t.Summary = fmt.Sprintf("Showing %d of %d results", len(t.Body), len(v.rows))
		if total := v.TotalPages(); total > 1 {
			cur := v.Page()
			bar := &PageBar{Current: cur, Total: total, HasPrev: cur > 1, HasNext: cur < total}
			for p := 1; p <= total; p++ {
				bar.Pages = append(bar.Pages, p)
			}
			t.Pagination = bar
		}
	}

	return t
}
