package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/protodex/internal/adapters/bbolt"
	"github.com/corey/protodex/internal/app"
	"github.com/corey/protodex/internal/domain/header"
	"github.com/corey/protodex/internal/domain/registry"
)

var headerDir string

var rootCmd = &cobra.Command{
	Use:   "protodex",
	Short: "protodex — protocol header index and naming bridge",
	Long:  "Parses protocol headers, bridges selectors to underscore names, and answers method, category, and baseline-drift queries.",
}

// newRegistry builds a registry over the configured header directory.
// Cobra runs each command in a fresh process, so per-command registries
// still benefit from the cache across multiple lookups in one run.
func newRegistry() *registry.Registry {
	return registry.New(resolveDir(), header.New())
}

// resolveDir returns the header search directory (--dir, default cwd).
func resolveDir() string {
	if headerDir != "" {
		return headerDir
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// openStore opens the baseline database under <dir>/.protodex, creating the
// directory on first use. Callers must Close it.
func openStore() (*bbolt.Store, error) {
	paths := app.NewPaths(resolveDir())
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", paths.Root, err)
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, fmt.Errorf("open baseline store: %w", err)
	}
	return store, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&headerDir, "dir", "", "header search directory (default: cwd)")

	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(categorizeCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(selCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(configCmd)
}
