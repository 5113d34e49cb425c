// protodex indexes Objective-C-style protocol headers and bridges their
// selectors to the underscore naming convention used by the scripting bridge.
package main

import (
	"os"

	"github.com/corey/protodex/cmd/protodex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
