package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/config"
	"github.com/taisazevedo9/gridview/internal/dataview"
	"github.com/taisazevedo9/gridview/internal/fetch"
	"github.com/taisazevedo9/gridview/internal/source"
	"github.com/taisazevedo9/gridview/internal/ui/grid"
	"github.com/taisazevedo9/gridview/internal/util"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch records from a JSON endpoint and browse them",
		Long: `Fetch records from an HTTP endpoint and browse them as a grid.

The endpoint may return a plain JSON array of objects, or a page
envelope ({"items": [...], "page": 0, "total_pages": N, "total": M})
like the one gridview serve produces.

With --remote the server owns pagination: the grid requests one page at
a time via a zero-based "page" query parameter, and page keys in the
grid trigger a refetch instead of slicing locally.

Examples:
  gridview fetch https://api.example.com/movies
  gridview fetch --remote http://localhost:8080/api/view`,
		Args: cobra.ExactArgs(1),
		RunE: runFetch,
	}

	cmd.Flags().Bool("remote", false, "Server-side pagination (page envelope endpoints)")
	cmd.Flags().Int("page", 0, "Initial zero-based page in remote mode")
	addDisplayFlags(cmd)
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	endpoint := args[0]
	remoteMode, _ := cmd.Flags().GetBool("remote")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	def, err := loadDefinition(cmd)
	if err != nil {
		return err
	}

	var (
		fn     fetch.FetchFunc[source.Result]
		remote *dataview.RemotePage
	)
	if remoteMode {
		paged := source.NewPaged(nil, endpoint)
		if page, _ := cmd.Flags().GetInt("page"); page > 0 {
			paged.SetPage(page)
		}
		fn = paged.Fetch
		remote = &dataview.RemotePage{OnPageChange: paged.SetPage}
	} else {
		fn = source.HTTP(nil, endpoint)
	}

	ctrl := fetch.New(fn, fetch.WithLogger[source.Result](log))
	defer ctrl.Dispose()

	ctrl.Init(cmd.Context())
	st := ctrl.State()
	if st.Err != "" {
		return util.FetchFailedError(endpoint, errors.New(st.Err))
	}

	view := buildView(cmd, st.Data, def, cfg, remote)
	return grid.Display(view, ctrl, displayOptions(cmd))
}
