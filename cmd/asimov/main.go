// asimov - Protocol validation and regeneration for AI-governed projects
// Source: https://github.com/royalbit/asimov

package main

import (
	"os"

	"github.com/royalbit/asimov/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
