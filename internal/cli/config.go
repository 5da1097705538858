package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taisazevedo9/gridview/internal/config"
	"github.com/taisazevedo9/gridview/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <key> [value]",
		Short: "Get and set gridview options",
		Long: fmt.Sprintf(`Get and set gridview configuration options.

Examples:
  gridview config grid.items_per_page       # Get value
  gridview config grid.items_per_page 25    # Set value
  gridview config database.url postgres://localhost/app
  gridview config --list                    # List all config

Available options:

%s`, config.GenerateHelpText()),
		Args: cobra.RangeArgs(0, 2),
		RunE: runConfig,
	}

	cmd.Flags().BoolP("list", "l", false, "List all configuration")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	listAll, _ := cmd.Flags().GetBool("list")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if listAll || len(args) == 0 {
		for _, key := range config.ListKeys() {
			if val, ok := cfg.GetValue(key); ok {
				fmt.Printf("%s=%s\n", key, val)
			}
		}
		return nil
	}

	key := args[0]

	if len(args) == 1 {
		val, ok := cfg.GetValue(key)
		if !ok {
			return fmt.Errorf("unknown config key: %s", key)
		}
		fmt.Println(val)
		return nil
	}

	if err := cfg.SetValue(key, args[1]); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println(styles.SuccessMsg(fmt.Sprintf("%s = %s", key, args[1])))
	return nil
}
