// whitelistctl is the operator tool of the whitelist registry. Without a
// subcommand it opens the interactive form.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	c := &cli{}
	defer c.close()

	if err := newRootCmd(c).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		c.close()
		os.Exit(1)
	}
}
