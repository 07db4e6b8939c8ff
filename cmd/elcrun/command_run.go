package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/radian628/elc"
)

// RunCommand parses and reduces a single expression, adapted from the
// teacher's cli/lambdarun/main.go (which took the same argument directly on
// the command line rather than as a document).
type RunCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func (c *RunCommand) Help() string {
	return strings.TrimSpace(`
Usage: elcrun run [options] <expression>

  Parses and reduces a single lambda calculus expression to normal form.

Options:

  -type=auto|int|bool|lambda   Output format (default: auto)
`)
}

func (c *RunCommand) Synopsis() string {
	return "Reduce a single expression to normal form"
}

func (c *RunCommand) Run(args []string) int {
	var outputType string
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.StringVar(&outputType, "type", "auto", "output type: auto, int, bool, lambda")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) != 1 {
		c.UI.Error("Expected exactly one expression argument")
		c.UI.Error(c.Help())
		return 1
	}

	ctx, reducer := newDocumentPieces(c.Logger)

	term, err := elc.Parse(ctx, reducer, rest[0])
	if err != nil {
		c.UI.Error("Parse error: " + err.Error())
		return 1
	}

	result := reducer.Reduce(term)

	switch outputType {
	case "lambda":
		c.UI.Output(result.String())
	case "int":
		n, ok := elc.DecodeInt(result)
		if !ok {
			c.UI.Error("Result is not a valid Church numeral")
			c.UI.Output(result.String())
			return 1
		}
		c.UI.Output(strconv.Itoa(n))
	case "bool":
		b, ok := elc.DecodeBool(result)
		if !ok {
			c.UI.Error("Result is not a valid Church boolean")
			c.UI.Output(result.String())
			return 1
		}
		c.UI.Output(strconv.FormatBool(b))
	case "auto":
		c.UI.Output(elc.Describe(result))
	default:
		c.UI.Error("Invalid output type " + outputType + " (must be: auto, int, bool, lambda)")
		return 1
	}

	return 0
}
