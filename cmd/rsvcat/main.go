// Command rsvcat decodes RSV documents to delimited text on standard output.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/rsvcat/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures as an ExitError.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
