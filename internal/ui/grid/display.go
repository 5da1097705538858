// Package grid renders populated views: an interactive TUI with sort,
// pagination, refetch, and clipboard yank, plus plain-table and JSON
// fallbacks for pipes and scripts.
package grid

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/taisazevedo9/gridview/internal/dataview"
	"github.com/taisazevedo9/gridview/internal/fetch"
	"github.com/taisazevedo9/gridview/internal/source"
)

// DisplayOptions controls how a view is rendered.
type DisplayOptions struct {
	// JSON outputs the raw rows as a JSON array of objects.
	JSON bool
	// Raw outputs the current snapshot as tab-separated values (for piping).
	Raw bool
	// NoPager forces plain table output even on a TTY.
	NoPager bool
}

// Display picks the right output mode based on options and environment.
// Interactive sessions get the TUI; pipes and explicit format flags get
// a one-shot render of the current snapshot.
func Display(view *dataview.View[dataview.Row], ctrl *fetch.Controller[source.Result], opts DisplayOptions) error {
	if opts.JSON {
		return PrintJSON(view.Rows())
	}

	if opts.Raw {
		for _, row := range view.Snapshot().Body {
			fmt.Println(strings.Join(row, "\t"))
		}
		return nil
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if !isTTY || opts.NoPager {
		PrintPlain(view.Snapshot())
		return nil
	}

	return RunGridTUI(view, ctrl)
}
