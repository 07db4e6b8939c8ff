package main

import (
	"flag"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/radian628/elc"
)

// DiagramCommand renders a reduced expression as a Tromp lambda diagram,
// adapted from the teacher's diagram.go (a format the original Rust source
// and spec.md never produce).
type DiagramCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func (c *DiagramCommand) Help() string {
	return strings.TrimSpace(`
Usage: elcrun diagram [options] <expression>

  Reduces an expression and renders it as a lambda diagram.

Options:

  -format=ascii|svg   Diagram format (default: ascii)
`)
}

func (c *DiagramCommand) Synopsis() string {
	return "Render a reduced expression as a lambda diagram"
}

func (c *DiagramCommand) Run(args []string) int {
	var format string
	fs := flag.NewFlagSet("diagram", flag.ContinueOnError)
	fs.StringVar(&format, "format", "ascii", "diagram format: ascii or svg")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		c.UI.Error("Expected exactly one expression argument")
		return 1
	}

	ctx, reducer := newDocumentPieces(c.Logger)

	term, err := elc.Parse(ctx, reducer, rest[0])
	if err != nil {
		c.UI.Error("Parse error: " + err.Error())
		return 1
	}
	result := reducer.Reduce(term)

	d := elc.ToDiagram(result)

	switch format {
	case "ascii":
		c.UI.Output(d.ToUnicode())
	case "svg":
		c.UI.Output(d.ToSVG())
	default:
		c.UI.Error("Invalid format " + format + " (must be: ascii, svg)")
		return 1
	}
	return 0
}
