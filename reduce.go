package elc

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"
)

// thunkState distinguishes a thunk that has never been forced from one whose
// forced value has been memoized (spec §3.5).
type thunkState int

const (
	unevaluated thunkState = iota
	evaluated
)

type thunk struct {
	state thunkState
	term  Term
}

// thunkTable maps bound indices to their (possibly still unevaluated)
// argument bindings. It is owned by a single top-level Reduce call and
// dropped when that call returns (spec §3.5, §5 "Ownership").
type thunkTable map[VarID]*thunk

// Reducer performs normal-order, by-need beta reduction against a shared
// Context (for fresh-variable allocation during alpha-renaming).
type Reducer struct {
	ctx    *Context
	logger hclog.Logger
}

// NewReducer builds a Reducer bound to ctx.
func NewReducer(ctx *Context) *Reducer {
	return &Reducer{ctx: ctx, logger: ctx.logger.Named("reduce")}
}

// Reduce drives t to a fixed point: repeat the one-pass reducer (pass) until
// a pass makes no further progress (spec §4.D.3). This is the direct
// "reduce-to-fixed-point" loop spec §9 recommends in place of the original
// source's read-before-set done flag.
func (r *Reducer) Reduce(t Term) Term {
	thunks := make(thunkTable)
	expr := t

	for {
		next, progress := r.pass(expr, thunks, set.New[VarID](0))
		expr = next

		// A bare variable left at the very top (pass() forced a binding whose
		// value was itself a bound variable) still has a pending binding;
		// force it here too (spec §4.D.1, last rule).
		if v, ok := expr.(Variable); ok {
			if th, exists := thunks[v.Index]; exists {
				expr = r.force(v.Index, th, thunks, set.New[VarID](0))
				progress = true
			}
		}

		if !progress {
			return expr
		}
	}
}

// pass implements one traversal of the step rules in spec §4.D.1, threading
// the thunk table and bound-variable set downward and reporting whether any
// beta-step or thunk-force fired anywhere in the traversal.
func (r *Reducer) pass(t Term, thunks thunkTable, bound *set.Set[VarID]) (Term, bool) {
	switch n := t.(type) {
	case Application:
		return r.passApplication(n, thunks, bound)
	case Abstraction:
		child := bound.Copy()
		child.Insert(n.Var)
		body, progress := r.pass(n.Body, thunks, child)
		return Abstraction{Var: n.Var, Body: body}, progress
	case Variable:
		if th, ok := thunks[n.Index]; ok {
			return r.force(n.Index, th, thunks, bound), true
		}
		return n, false
	default:
		panic("elc: unknown term variant in reducer")
	}
}

func (r *Reducer) passApplication(app Application, thunks thunkTable, bound *set.Set[VarID]) (Term, bool) {
	switch fn := app.Fun.(type) {
	case Abstraction:
		// App(Abs(v, body), arg): install a lazy binding and recurse into
		// the body. The redex is consumed; this always makes progress.
		thunks[fn.Var] = &thunk{state: unevaluated, term: app.Arg}
		r.logger.Trace("beta step", "var", fn.Var)
		body, _ := r.pass(fn.Body, thunks, bound)
		return body, true

	case Variable:
		if th, ok := thunks[fn.Index]; ok {
			// App(Var(v), arg) where v is thunked: force it, substitute
			// into the function position, and continue.
			forced := r.force(fn.Index, th, thunks, bound)
			combined := Application{Fun: forced, Arg: app.Arg}
			result, _ := r.pass(combined, thunks, bound)
			return result, true
		}

		// The function position is an irreducible free variable. There is
		// nothing to do at the head, so try to simplify the argument: if it
		// is itself a thunked variable, force it; otherwise recurse.
		if argVar, ok := app.Arg.(Variable); ok {
			if th, ok := thunks[argVar.Index]; ok {
				forced := r.force(argVar.Index, th, thunks, bound)
				return Application{Fun: app.Fun, Arg: forced}, true
			}
		}
		arg, progress := r.pass(app.Arg, thunks, bound)
		return Application{Fun: app.Fun, Arg: arg}, progress

	default:
		// App(f, a) otherwise: recurse into both sides in situ.
		fun, p1 := r.pass(app.Fun, thunks, bound)
		arg, p2 := r.pass(app.Arg, thunks, bound)
		return Application{Fun: fun, Arg: arg}, p1 || p2
	}
}

// force resolves a thunk (spec §4.D.2). An already-Evaluated thunk returns a
// fresh alpha-renamed copy of its stored value every time, preventing index
// collisions between distinct use sites. An Unevaluated thunk is reduced
// once (one pass, over an alpha-renamed copy of its contents), memoized as
// Evaluated, and returned.
func (r *Reducer) force(idx VarID, th *thunk, thunks thunkTable, bound *set.Set[VarID]) Term {
	r.logger.Trace("force", "var", idx)
	switch th.state {
	case evaluated:
		return AlphaRename(r.ctx, th.term)
	default:
		renamed := AlphaRename(r.ctx, th.term)
		reduced, _ := r.pass(renamed, thunks, bound)
		thunks[idx] = &thunk{state: evaluated, term: reduced}
		return reduced
	}
}
