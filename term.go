package elc

import (
	"strconv"
)

// VarID is a fresh, monotonically-allocated bound-variable index. Unlike the
// teacher's named Var{Name: string}, terms here are nameless at runtime:
// every occurrence of a variable is a reference to the index some enclosing
// Abstraction introduced after alpha-renaming (spec §4.A / §3.1).
type VarID = uint32

// Term is the lambda-calculus expression ADT: Abstraction, Application, or
// Variable. Subterms are shared freely once constructed and are never
// mutated in place.
type Term interface {
	// String renders the term using the fixed pretty-print contract from
	// spec §4.A: "\<v>. (<body>)", "(<f> <a>)", "<v>".
	String() string
	isTerm()
}

// Variable references a bound index, or (rarely, for a top-level name looked
// up before its abstraction context exists) a free index.
type Variable struct {
	Index VarID
}

// Abstraction is a binder: λ<Var>.<Body>.
type Abstraction struct {
	Var  VarID
	Body Term
}

// Application is ordinary function application, Fun applied to Arg.
type Application struct {
	Fun Term
	Arg Term
}

func (Variable) isTerm()    {}
func (Abstraction) isTerm() {}
func (Application) isTerm() {}

func (v Variable) String() string {
	return strconv.FormatUint(uint64(v.Index), 10)
}

func (a Abstraction) String() string {
	return "\\" + strconv.FormatUint(uint64(a.Var), 10) + ". (" + a.Body.String() + ")"
}

func (a Application) String() string {
	return "(" + a.Fun.String() + " " + a.Arg.String() + ")"
}
