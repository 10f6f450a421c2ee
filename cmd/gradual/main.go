// gradual CLI - command-line interface for the gradual type checker.
package main

import (
	"os"

	"github.com/gradualcheck/gradual/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
)

func main() {
	os.Exit(cli.Execute(Version))
}
