package cli

import (
	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/config"
	"github.com/taisazevedo9/gridview/internal/dataview"
	"github.com/taisazevedo9/gridview/internal/source"
	"github.com/taisazevedo9/gridview/internal/ui/grid"
	"github.com/taisazevedo9/gridview/internal/util"
	"github.com/taisazevedo9/gridview/internal/viewdef"
)

// addDisplayFlags registers the flags every data command shares.
func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().String("view-def", "", "YAML view definition (title, columns, page size)")
	cmd.Flags().String("title", "", "Grid title (overrides the view definition)")
	cmd.Flags().Int("per-page", 0, "Rows per page (0 = view definition or config default)")
	cmd.Flags().Bool("no-pagination", false, "Render all rows on one page")
	cmd.Flags().Bool("json", false, "Output rows as a JSON array")
	cmd.Flags().Bool("raw", false, "Output tab-separated values (for piping)")
	cmd.Flags().Bool("no-pager", false, "Disable the interactive grid")
}

// displayOptions reads the shared output-mode flags.
func displayOptions(cmd *cobra.Command) grid.DisplayOptions {
	jsonOut, _ := cmd.Flags().GetBool("json")
	raw, _ := cmd.Flags().GetBool("raw")
	noPager, _ := cmd.Flags().GetBool("no-pager")
	return grid.DisplayOptions{JSON: jsonOut, Raw: raw, NoPager: noPager}
}

// loadDefinition loads --view-def when given.
func loadDefinition(cmd *cobra.Command) (*viewdef.Definition, error) {
	path, _ := cmd.Flags().GetString("view-def")
	if path == "" {
		return nil, nil
	}
	def, err := viewdef.Load(path)
	if err != nil {
		return nil, util.ViewDefError(path, err)
	}
	return def, nil
}

// buildView assembles a view over a fetched result. Column descriptors
// come from the definition when one is given, then from the result's
// reported column order, then from the row keys themselves.
func buildView(cmd *cobra.Command, res source.Result, def *viewdef.Definition, cfg *config.Config, remote *dataview.RemotePage) *dataview.View[dataview.Row] {
	var cols []dataview.Column
	title := ""
	perPage := cfg.Grid.ItemsPerPage

	switch {
	case def != nil:
		cols = def.DataColumns()
		title = def.Title
		if def.ItemsPerPage > 0 {
			perPage = def.ItemsPerPage
		}
	case len(res.Columns) > 0:
		cols = viewdef.FromKeys(res.Columns)
	default:
		cols = viewdef.Infer(res.Rows)
	}

	if t, _ := cmd.Flags().GetString("title"); t != "" {
		title = t
	}
	if n, _ := cmd.Flags().GetInt("per-page"); n > 0 {
		perPage = n
	}
	noPagination, _ := cmd.Flags().GetBool("no-pagination")

	view := dataview.NewView(res.Rows, cols, dataview.MapField, dataview.Options{
		Title:        title,
		ItemsPerPage: perPage,
		NoPagination: noPagination,
		Remote:       remote,
	})
	if res.Paged {
		view.SetRemote(res.Page, res.TotalPages)
	}
	return view
}
