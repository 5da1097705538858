// Package cli wires the gridview commands: view, query, fetch, serve,
// and config. Each data command builds a fetch controller over its
// source, populates a view, and hands both to the grid display.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/logging"
	"github.com/taisazevedo9/gridview/internal/ui/styles"
	"github.com/taisazevedo9/gridview/internal/util"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// log is the process logger, set up in Execute before commands run.
var log = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "gridview",
	Short: "Explore tabular data from files, Postgres, and HTTP APIs",
	Long: `gridview renders record collections as an interactive, sortable,
paginated grid in the terminal.

Sources:
  gridview view data.json              # JSON or YAML record file
  gridview query "SELECT * FROM t"     # PostgreSQL query
  gridview fetch https://api/items     # JSON endpoint
  gridview serve data.json             # Expose a file as a paged API

Columns are inferred from the data, or described in a YAML view
definition passed with --view-def.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func Execute() error {
	logger, cleanup := logging.Setup()
	defer cleanup()
	log = logger

	if err := rootCmd.Execute(); err != nil {
		// Check if it's a structured GridError
		var gridErr *util.GridError
		if errors.As(err, &gridErr) {
			fmt.Fprintln(os.Stderr, gridErr.Format())
		} else {
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate(fmt.Sprintf("gridview version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			styles.SetNoColor(true)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newViewCmd(),
		newQueryCmd(),
		newFetchCmd(),
		newServeCmd(),
		newConfigCmd(),
		newCompletionCmd(),
	)
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gridview version %s\n", Version)
			fmt.Printf("  commit: %s\n", CommitSHA)
			fmt.Printf("  built:  %s\n", BuildDate)
		},
	}
}
