package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/protodex/internal/domain/header"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.h>",
	Short: "Parse a header file and dump its structure",
	Long:  "Shows everything the parser extracted: interfaces, protocols with sections, properties, methods, and any sections that failed to parse. Useful when a methods query returns an unexpectedly empty set.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	doc := header.New().ParseFile(args[0])
	fmt.Print(formatDocument(doc))
	return nil
}
