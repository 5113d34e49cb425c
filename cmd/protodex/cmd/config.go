package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/protodex/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the header directory and baseline DB path. No parsing performed.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	dir := resolveDir()
	paths := app.NewPaths(dir)

	dbStatus := fmt.Sprintf("%s✗ absent%s", colorYellow, colorReset)
	if _, err := os.Stat(paths.DB); err == nil {
		dbStatus = fmt.Sprintf("%s✓ present%s", colorGreen, colorReset)
	}

	fmt.Printf("%s⚡ protodex config%s\n", colorBold, colorReset)
	fmt.Printf("  Headers:   %s\n", dir)
	fmt.Printf("  State:     %s\n", paths.Root)
	fmt.Printf("  Baselines: %s  %s\n", paths.DB, dbStatus)
	return nil
}
