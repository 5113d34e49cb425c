package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods <Protocol>",
	Short: "List bridged method names for a protocol",
	Long:  "Parses <Protocol>.h (or <Protocol>Protocol.h) in the header directory and prints the bridged name of every live method. A missing protocol prints nothing.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMethods,
}

func runMethods(cmd *cobra.Command, args []string) error {
	reg := newRegistry()
	names := reg.Methods(args[0])

	fmt.Printf("%s⚡ %s%s │ %d methods\n", colorBold, args[0], colorReset, len(names))
	for _, name := range sortedNames(names) {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
