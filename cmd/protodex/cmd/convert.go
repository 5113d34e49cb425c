package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/protodex/internal/domain/bridge"
)

var selArity int

var selCmd = &cobra.Command{
	Use:   "sel <bridged-name>",
	Short: "Convert a bridged underscore name to selector form",
	Long:  "Converts e.g. drawRect_inView_ to drawRect:inView:. With --arity, fails unless the name encodes exactly that many keywords.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSel,
}

var targetCmd = &cobra.Command{
	Use:   "target <signature>",
	Short: "Convert a declaration or selector to its bridged name",
	Long:  "Converts e.g. '- (void)drawRect:(NSRect)rect inView:(NSView *)view;' or drawRect:inView: to drawRect_inView_.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTarget,
}

func runSel(cmd *cobra.Command, args []string) error {
	selector, err := bridge.ToSelector(args[0], selArity)
	if err != nil {
		return err
	}
	fmt.Println(selector)
	return nil
}

func runTarget(cmd *cobra.Command, args []string) error {
	fmt.Println(bridge.ToTarget(args[0]))
	return nil
}

func init() {
	selCmd.Flags().IntVar(&selArity, "arity", bridge.ArityUnchecked, "expected keyword count (-1 disables the check)")
}
