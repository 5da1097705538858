package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/config"
	"github.com/taisazevedo9/gridview/internal/source"
	"github.com/taisazevedo9/gridview/internal/ui/styles"
	"github.com/taisazevedo9/gridview/internal/util"
	"github.com/taisazevedo9/gridview/internal/web"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a record file as a paged JSON API",
		Long: `Serve a record file over HTTP in the page-envelope format the fetch
command consumes. Sorting and pagination happen server-side.

Endpoints:
  GET /api/view?page=N&per_page=M&sort=key&dir=asc|desc
  GET /api/rows
  GET /healthz

Examples:
  gridview serve movies.json
  gridview serve movies.yaml --addr :9000 --view-def movies-view.yaml
  gridview fetch --remote http://localhost:8080/api/view   # from another shell`,
		Args: cobra.ExactArgs(1),
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	cmd.Flags().String("view-def", "", "YAML view definition fixing the column order")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rows, err := source.ReadRecords(path)
	if err != nil {
		return util.SourceFormatError(path, err)
	}

	var columns []string
	if def, err := loadDefinition(cmd); err != nil {
		return err
	} else if def != nil {
		for _, c := range def.Columns {
			columns = append(columns, c.Key)
		}
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	srv := web.NewServer(rows, columns, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	fmt.Println(styles.SuccessMsg(fmt.Sprintf("Serving %d rows on %s", len(rows), addr)))
	fmt.Println(styles.MutedMsg("Press Ctrl+C to stop"))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
