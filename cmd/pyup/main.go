// cmd/pyup/main.go
package main

import (
	"fmt"
	"os"

	"github.com/arc-language/pyup"
	"github.com/arc-language/pyup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !pyup.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(pyup.ExitCode(err))
	}
}
