package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/config"
	"github.com/taisazevedo9/gridview/internal/fetch"
	"github.com/taisazevedo9/gridview/internal/source"
	"github.com/taisazevedo9/gridview/internal/ui/grid"
	"github.com/taisazevedo9/gridview/internal/util"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Display a JSON or YAML record file as a grid",
		Long: `Display a record file as an interactive grid.

The file must contain a JSON array or YAML sequence of objects. Nested
values are addressed with dotted column keys (e.g. producer.name).
Pressing r in the grid re-reads the file, so edits show up live.

Examples:
  gridview view movies.json
  gridview view movies.yaml --view-def movies-view.yaml
  gridview view movies.json --per-page 25
  gridview view movies.json --json | jq .`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}

	addDisplayFlags(cmd)
	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	def, err := loadDefinition(cmd)
	if err != nil {
		return err
	}

	ctrl := fetch.New(source.File(path), fetch.WithLogger[source.Result](log))
	defer ctrl.Dispose()

	ctrl.Init(cmd.Context())
	st := ctrl.State()
	if st.Err != "" {
		return util.SourceFormatError(path, errors.New(st.Err))
	}

	view := buildView(cmd, st.Data, def, cfg, nil)
	return grid.Display(view, ctrl, displayOptions(cmd))
}
