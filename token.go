package elc

import (
	"fmt"
	"regexp"
)

// TokenCategory classifies a token for the Pratt parser (spec §3.4).
// Whitespace never reaches a Token — it is discarded at emission time.
type TokenCategory int

const (
	CategoryParen TokenCategory = iota
	CategoryLambda
	CategoryLambdaDot
	CategoryVariable
	CategoryReader
)

// Token is a lexeme together with the reader that produced it (nil for
// built-in categories) and its syntactic category.
type Token struct {
	Lexeme   string
	Reader   *Reader
	Category TokenCategory
}

var (
	reLambda     = regexp.MustCompile(`^\\`)
	reLambdaDot  = regexp.MustCompile(`^\.`)
	reVariable   = regexp.MustCompile(`^\w+`)
	reParen      = regexp.MustCompile(`^[()]`)
	reWhitespace = regexp.MustCompile(`^\s+`)
)

// Tokenize splits input into a token stream, consulting ctx's registered
// readers before the built-in categories at every position (spec §4.E).
// Reader candidacy is decided by actually reducing the reader's matcher
// against encoded prefixes of the input, which is why a *Reducer is
// threaded through here.
func Tokenize(ctx *Context, reducer *Reducer, input string) ([]Token, error) {
	runes := []rune(input)
	var tokens []Token
	pos := 0

	for pos < len(runes) {
		hit, length, err := tryReaders(ctx, reducer, runes, pos)
		if err != nil {
			return nil, err
		}
		if hit != nil {
			tokens = append(tokens, Token{
				Lexeme:   string(runes[pos : pos+length]),
				Reader:   hit,
				Category: CategoryReader,
			})
			pos += length
			continue
		}

		rest := string(runes[pos:])

		if m := reLambda.FindString(rest); m != "" {
			tokens = append(tokens, Token{Lexeme: m, Category: CategoryLambda})
			pos += len([]rune(m))
			continue
		}
		if m := reLambdaDot.FindString(rest); m != "" {
			tokens = append(tokens, Token{Lexeme: m, Category: CategoryLambdaDot})
			pos += len([]rune(m))
			continue
		}
		if m := reVariable.FindString(rest); m != "" {
			tokens = append(tokens, Token{Lexeme: m, Category: CategoryVariable})
			pos += len([]rune(m))
			continue
		}
		if m := reParen.FindString(rest); m != "" {
			tokens = append(tokens, Token{Lexeme: m, Category: CategoryParen})
			pos += len([]rune(m))
			continue
		}
		if m := reWhitespace.FindString(rest); m != "" {
			pos += len([]rune(m))
			continue
		}

		return nil, fmt.Errorf("Syntax error at position %d.", pos)
	}

	return tokens, nil
}

// tryReaders runs each registered reader's matcher, in declaration order,
// against successively longer codepoint prefixes starting at pos. The first
// reader to accept wins (earliest declared wins ties); nil, 0 means no
// reader matched here.
func tryReaders(ctx *Context, reducer *Reducer, runes []rune, pos int) (*Reader, int, error) {
	for i := range ctx.Readers {
		rd := ctx.Readers[i]
		state, length, err := matchReader(ctx, reducer, &rd, runes, pos)
		if err != nil {
			return nil, 0, err
		}
		if state == 2 {
			return &rd, length, nil
		}
	}
	return nil, 0, nil
}

// matchReader implements the per-reader candidate-length search of spec
// §4.E.1: grow L while the matcher returns "need more input" (1), accept on
// 2, give up (reject) on 0 or on running out of input.
func matchReader(ctx *Context, reducer *Reducer, rd *Reader, runes []rune, pos int) (state int, length int, err error) {
	L := 1
	for {
		if pos+L > len(runes) {
			return 0, 0, nil
		}

		prefix := runes[pos : pos+L]
		codepoints := make([]int, len(prefix))
		for i, c := range prefix {
			codepoints[i] = int(c)
		}

		arg := EncodeIntList(ctx, codepoints)
		result := reducer.Reduce(Application{Fun: rd.Matcher, Arg: arg})

		n, ok := DecodeEnum(result)
		if !ok {
			return 0, 0, fmt.Errorf("Reader returned unexpected value.")
		}

		switch n {
		case 0:
			return 0, 0, nil
		case 1:
			L++
		case 2:
			ctx.logger.Trace("reader matched", "pos", pos, "length", L)
			return 2, L, nil
		default:
			return 0, 0, fmt.Errorf("Reader returned a value of an n-tuple which is too large!")
		}
	}
}
