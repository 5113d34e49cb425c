package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize <Protocol>",
	Short: "List bridged names split into required and optional",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategorize,
}

func runCategorize(cmd *cobra.Command, args []string) error {
	reg := newRegistry()
	buckets := reg.Categorized(args[0])

	fmt.Printf("%s⚡ %s%s │ %d required, %d optional\n",
		colorBold, args[0], colorReset, len(buckets.Required), len(buckets.Optional))
	for _, name := range buckets.Required {
		fmt.Printf("  %srequired%s  %s\n", colorGreen, colorReset, name)
	}
	for _, name := range buckets.Optional {
		fmt.Printf("  %soptional%s  %s\n", colorGray, colorReset, name)
	}
	return nil
}
