package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <Protocol> <bridged-name>",
	Short: "Show the parsed declaration behind a bridged name",
	Args:  cobra.ExactArgs(2),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	reg := newRegistry()
	m := reg.MethodInfo(args[0], args[1])
	if m == nil {
		return fmt.Errorf("no method %q in protocol %q", args[1], args[0])
	}
	fmt.Print(formatMethodInfo(args[1], m))
	return nil
}
