// Command woyofal estimates prepaid electricity costs under the
// three-tier Woyofal tariff.
package main

import (
	"os"

	"github.com/sdiallo/woyofal/internal/cli"
	"github.com/sdiallo/woyofal/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
// Split from main so tests can exercise it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra has already printed the error.
		return 1
	}
	return 0
}
