package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/radian628/elc"
)

const version = "0.1.0"

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "elcrun",
		Level:  hclog.LevelFromString(os.Getenv("ELCRUN_LOG")),
		Output: os.Stderr,
	})

	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	c := cli.NewCLI("elcrun", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &RunCommand{UI: ui, Logger: logger.Named("run")}, nil
		},
		"tokens": func() (cli.Command, error) {
			return &TokensCommand{UI: ui, Logger: logger.Named("tokens")}, nil
		},
		"diagram": func() (cli.Command, error) {
			return &DiagramCommand{UI: ui, Logger: logger.Named("diagram")}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitStatus)
}

// newDocumentPieces wires up a fresh Context/Reducer pair, the unit every
// subcommand below parses against. Kept here rather than duplicated per
// command, the way the teacher's CLI keeps its tryToInt/tryToBool helpers
// in one place (cli/lambdarun/main.go).
func newDocumentPieces(logger hclog.Logger) (*elc.Context, *elc.Reducer) {
	ctx := elc.NewContext(logger)
	return ctx, elc.NewReducer(ctx)
}
