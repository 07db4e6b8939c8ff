package main

import (
	"fmt"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/radian628/elc"
)

// TokensCommand prints the token stream an expression lexes to, without
// parsing or reducing it. Useful for debugging a reader's matcher.
type TokensCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func (c *TokensCommand) Help() string {
	return strings.TrimSpace(`
Usage: elcrun tokens <expression>

  Tokenizes an expression and prints one token per line.
`)
}

func (c *TokensCommand) Synopsis() string {
	return "Print the token stream for an expression"
}

func (c *TokensCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("Expected exactly one expression argument")
		return 1
	}

	ctx, reducer := newDocumentPieces(c.Logger)

	tokens, err := elc.Tokenize(ctx, reducer, args[0])
	if err != nil {
		c.UI.Error("Tokenize error: " + err.Error())
		return 1
	}

	for _, t := range tokens {
		c.UI.Output(fmt.Sprintf("%-10s %q", tokenCategoryName(t.Category), t.Lexeme))
	}
	return 0
}

func tokenCategoryName(cat elc.TokenCategory) string {
	switch cat {
	case elc.CategoryParen:
		return "paren"
	case elc.CategoryLambda:
		return "lambda"
	case elc.CategoryLambdaDot:
		return "dot"
	case elc.CategoryVariable:
		return "variable"
	case elc.CategoryReader:
		return "reader"
	default:
		return "unknown"
	}
}
