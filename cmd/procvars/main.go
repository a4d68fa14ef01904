// Command procvars seeds an in-memory execution tree from a TOML fixture and
// runs one variable operation against it, printing the result as JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
