package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/config"
	"github.com/taisazevedo9/gridview/internal/fetch"
	"github.com/taisazevedo9/gridview/internal/source"
	"github.com/taisazevedo9/gridview/internal/ui"
	"github.com/taisazevedo9/gridview/internal/ui/grid"
	"github.com/taisazevedo9/gridview/internal/util"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a read-only SQL query and browse the results",
		Long: `Run a SELECT query against PostgreSQL and browse the results as a
grid. Pressing r in the grid re-executes the query against live data.

The connection URL is taken from --url, then the DATABASE_URL
environment variable (a .env file in the working directory is read),
then database.url in the config file.

Only read queries are allowed; this command never modifies data.

Examples:
  gridview query "SELECT * FROM users ORDER BY created_at DESC"
  gridview query --url postgres://localhost/app "SELECT id, name FROM t"`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().String("url", "", "PostgreSQL connection URL")
	cmd.Flags().Int("timeout", 60, "Query timeout in seconds")
	addDisplayFlags(cmd)
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	query := args[0]

	// Guard against accidental writes. The grid is a viewer.
	upper := strings.ToUpper(strings.TrimSpace(query))
	for _, kw := range []string{"INSERT", "UPDATE", "DELETE", "DROP", "CREATE", "ALTER", "TRUNCATE"} {
		if strings.HasPrefix(upper, kw) {
			return util.NewError("Write queries are not allowed").
				WithMessage("gridview query is read-only; run write statements with your usual SQL client")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	def, err := loadDefinition(cmd)
	if err != nil {
		return err
	}

	// A .env next to the data is the common place for DATABASE_URL.
	_ = godotenv.Load()

	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = cfg.DatabaseURL()
	}
	if url == "" {
		return util.NoDatabaseURLError()
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	spinner := ui.NewSpinner("Connecting to database")
	spinner.Start()
	db, err := source.ConnectDB(ctx, url)
	if err != nil {
		spinner.Error("connection failed")
		return util.DatabaseConnectionError(url, err)
	}
	spinner.Stop()
	defer db.Close()

	ctrl := fetch.New(db.Query(query), fetch.WithLogger[source.Result](log))
	defer ctrl.Dispose()

	ctrl.Init(ctx)
	st := ctrl.State()
	if st.Err != "" {
		return util.NewError("Query failed").WithMessage(st.Err).Wrap(errors.New(st.Err))
	}

	view := buildView(cmd, st.Data, def, cfg, nil)
	return grid.Display(view, ctrl, displayOptions(cmd))
}
