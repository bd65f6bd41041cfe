// cmd/fasttrap is the command-line interface to the trap dispatcher
// demonstration harness.
package main

import (
	"context"
	"os"

	"github.com/YdrMaster/fast-trap/internal/cli"
	"github.com/YdrMaster/fast-trap/internal/cli/cmd"
)

var (
	commands = []cli.Command{
		cmd.Demo(),
	}
)

// Entry point.
func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
