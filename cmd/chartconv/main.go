// Command chartconv converts extended rhythm-game charts to engine
// level data.
package main

import (
	"fmt"
	"os"

	"github.com/sekaitools/chartconv/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
