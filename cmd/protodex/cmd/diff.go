package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/protodex/internal/ports"
)

var diffCmd = &cobra.Command{
	Use:   "diff <Protocol>",
	Short: "Diff parsed bridged names against the stored baseline",
	Long:  "Compares the parsed bridged-name set for a protocol against the baseline saved with 'protodex baseline set'. Reports drift in both directions plus a match rate.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	protocol := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	baseline, err := loadBaselineSet(store, protocol)
	if err != nil {
		return err
	}

	reg := newRegistry()
	diff := reg.DiffBaseline(protocol, baseline)

	fmt.Printf("%s⚡ %s%s │ match rate %.2f\n", colorBold, protocol, colorReset, diff.MatchRate)
	for _, name := range sortedNames(diff.MissingInBaseline) {
		fmt.Printf("  %s+ %s%s  (parsed, not in baseline)\n", colorGreen, name, colorReset)
	}
	for _, name := range sortedNames(diff.ExtraInBaseline) {
		fmt.Printf("  %s- %s%s  (baseline, not parsed)\n", colorYellow, name, colorReset)
	}
	return nil
}

// loadBaselineSet reads a stored baseline as a membership set.
func loadBaselineSet(store ports.BaselineStore, protocol string) (map[string]bool, error) {
	names, err := store.LoadBaseline(protocol)
	if err != nil {
		return nil, err
	}
	if names == nil {
		return nil, fmt.Errorf("no baseline for %q — record one with: protodex baseline set %s <file>", protocol, protocol)
	}
	baseline := make(map[string]bool, len(names))
	for _, n := range names {
		baseline[n] = true
	}
	return baseline, nil
}
