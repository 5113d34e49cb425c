package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage stored baseline name sets",
}

var baselineSetCmd = &cobra.Command{
	Use:   "set <Protocol> <names-file>",
	Short: "Record a baseline from a file of bridged names (one per line)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBaselineSet,
}

var baselineShowCmd = &cobra.Command{
	Use:   "show [Protocol]",
	Short: "Show a stored baseline, or list protocols with baselines",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBaselineShow,
}

var baselineRmCmd = &cobra.Command{
	Use:   "rm <Protocol>",
	Short: "Delete a stored baseline",
	Args:  cobra.ExactArgs(1),
	RunE:  runBaselineRm,
}

func runBaselineSet(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read names file: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveBaseline(args[0], names); err != nil {
		return err
	}
	fmt.Printf("%s✓%s baseline for %s: %d names\n", colorGreen, colorReset, args[0], len(names))
	return nil
}

func runBaselineShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		protocols, err := store.Protocols()
		if err != nil {
			return err
		}
		for _, p := range protocols {
			fmt.Println(p)
		}
		return nil
	}

	names, err := store.LoadBaseline(args[0])
	if err != nil {
		return err
	}
	if names == nil {
		return fmt.Errorf("no baseline for %q", args[0])
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runBaselineRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteBaseline(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s✓%s baseline for %s removed\n", colorGreen, colorReset, args[0])
	return nil
}

func init() {
	baselineCmd.AddCommand(baselineSetCmd)
	baselineCmd.AddCommand(baselineShowCmd)
	baselineCmd.AddCommand(baselineRmCmd)
}
