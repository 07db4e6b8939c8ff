package elc

// Standard combinator library, adapted from the teacher's combinators.go.
//
// The teacher represents combinators as package-level vars built from named
// Vars, since its Object type carries string names. Our Term type is
// nameless at runtime — every Abstraction introduces a fresh index minted
// from a Context's monotone counter — so a combinator can't be a bare
// package value; it has to be a function that builds a fresh copy against
// whatever Context the caller is compiling with. Every constructor below
// therefore takes a *Context and returns a brand new, independently
// fresh-indexed Term, so two calls (or two uses in the same document) never
// alias bound variables.

// CombinatorI builds I := λx.x (identity).
func CombinatorI(ctx *Context) Term {
	x := ctx.NewVar()
	return Abstraction{Var: x, Body: Variable{Index: x}}
}

// CombinatorK builds K := λx.λy.x (constant), the Church-encoded TRUE.
func CombinatorK(ctx *Context) Term {
	x := ctx.NewVar()
	y := ctx.NewVar()
	return Abstraction{Var: x, Body: Abstraction{Var: y, Body: Variable{Index: x}}}
}

// CombinatorS builds S := λx.λy.λz. x z (y z), together with K a complete
// basis for combinatory logic.
func CombinatorS(ctx *Context) Term {
	x, y, z := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: x, Body: Abstraction{Var: y, Body: Abstraction{Var: z, Body: Application{
		Fun: Application{Fun: Variable{Index: x}, Arg: Variable{Index: z}},
		Arg: Application{Fun: Variable{Index: y}, Arg: Variable{Index: z}},
	}}}}
}

// CombinatorB builds B := λx.λy.λz. x (y z) (composition).
func CombinatorB(ctx *Context) Term {
	x, y, z := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: x, Body: Abstraction{Var: y, Body: Abstraction{Var: z, Body: Application{
		Fun: Variable{Index: x},
		Arg: Application{Fun: Variable{Index: y}, Arg: Variable{Index: z}},
	}}}}
}

// CombinatorC builds C := λx.λy.λz. x z y (flip).
func CombinatorC(ctx *Context) Term {
	x, y, z := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: x, Body: Abstraction{Var: y, Body: Abstraction{Var: z, Body: Application{
		Fun: Application{Fun: Variable{Index: x}, Arg: Variable{Index: z}},
		Arg: Variable{Index: y},
	}}}}
}

// CombinatorW builds W := λx.λy. x y y (duplication).
func CombinatorW(ctx *Context) Term {
	x, y := ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: x, Body: Abstraction{Var: y, Body: Application{
		Fun: Application{Fun: Variable{Index: x}, Arg: Variable{Index: y}},
		Arg: Variable{Index: y},
	}}}
}

// CombinatorU builds U := λx. x x (self-application, aka ω/δ).
func CombinatorU(ctx *Context) Term {
	x := ctx.NewVar()
	return Abstraction{Var: x, Body: Application{Fun: Variable{Index: x}, Arg: Variable{Index: x}}}
}

// CombinatorOmega builds Ω := U U — the smallest term with no normal form.
// Reducing it diverges; callers must not pass it to Reducer.Reduce directly.
func CombinatorOmega(ctx *Context) Term {
	return Application{Fun: CombinatorU(ctx), Arg: CombinatorU(ctx)}
}

// CombinatorY builds the Y combinator: λf. (λx. f (x x)) (λx. f (x x)).
// Y g reduces to g (Y g), enabling recursion.
func CombinatorY(ctx *Context) Term {
	f := ctx.NewVar()

	selfApply := func() Term {
		x := ctx.NewVar()
		return Abstraction{Var: x, Body: Application{
			Fun: Variable{Index: f},
			Arg: Application{Fun: Variable{Index: x}, Arg: Variable{Index: x}},
		}}
	}

	return Abstraction{Var: f, Body: Application{Fun: selfApply(), Arg: selfApply()}}
}

// ChurchTrue builds λt.λf. t (TRUE, same as K).
func ChurchTrue(ctx *Context) Term { return CombinatorK(ctx) }

// ChurchFalse builds λt.λf. f.
func ChurchFalse(ctx *Context) Term {
	t, f := ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: t, Body: Abstraction{Var: f, Body: Variable{Index: f}}}
}

// ChurchAnd builds AND := λp.λq. p q p.
func ChurchAnd(ctx *Context) Term {
	p, q := ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: p, Body: Abstraction{Var: q, Body: Application{
		Fun: Application{Fun: Variable{Index: p}, Arg: Variable{Index: q}},
		Arg: Variable{Index: p},
	}}}
}

// ChurchOr builds OR := λp.λq. p p q.
func ChurchOr(ctx *Context) Term {
	p, q := ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: p, Body: Abstraction{Var: q, Body: Application{
		Fun: Application{Fun: Variable{Index: p}, Arg: Variable{Index: p}},
		Arg: Variable{Index: q},
	}}}
}

// ChurchNot builds NOT := λp. p FALSE TRUE.
func ChurchNot(ctx *Context) Term {
	p := ctx.NewVar()
	return Abstraction{Var: p, Body: Application{
		Fun: Application{Fun: Variable{Index: p}, Arg: ChurchFalse(ctx)},
		Arg: ChurchTrue(ctx),
	}}
}

// ChurchIfThenElse builds IFTHENELSE := λp.λa.λb. p a b.
func ChurchIfThenElse(ctx *Context) Term {
	p, a, b := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: p, Body: Abstraction{Var: a, Body: Abstraction{Var: b, Body: Application{
		Fun: Application{Fun: Variable{Index: p}, Arg: Variable{Index: a}},
		Arg: Variable{Index: b},
	}}}}
}

// ChurchSucc builds SUCC := λn.λf.λx. f (n f x).
func ChurchSucc(ctx *Context) Term {
	n, f, x := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: n, Body: Abstraction{Var: f, Body: Abstraction{Var: x, Body: Application{
		Fun: Variable{Index: f},
		Arg: Application{Fun: Application{Fun: Variable{Index: n}, Arg: Variable{Index: f}}, Arg: Variable{Index: x}},
	}}}}
}

// ChurchPlus builds PLUS := λm.λn.λf.λx. m f (n f x).
func ChurchPlus(ctx *Context) Term {
	m, n, f, x := ctx.NewVar(), ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: m, Body: Abstraction{Var: n, Body: Abstraction{Var: f, Body: Abstraction{Var: x, Body: Application{
		Fun: Application{Fun: Variable{Index: m}, Arg: Variable{Index: f}},
		Arg: Application{Fun: Application{Fun: Variable{Index: n}, Arg: Variable{Index: f}}, Arg: Variable{Index: x}},
	}}}}}
}

// ChurchMult builds MULT := λm.λn.λf. m (n f).
func ChurchMult(ctx *Context) Term {
	m, n, f := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: m, Body: Abstraction{Var: n, Body: Abstraction{Var: f, Body: Application{
		Fun: Variable{Index: m},
		Arg: Application{Fun: Variable{Index: n}, Arg: Variable{Index: f}},
	}}}}
}

// ChurchPair builds PAIR := λx.λy.λf. f x y.
func ChurchPair(ctx *Context) Term {
	x, y, f := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: x, Body: Abstraction{Var: y, Body: Abstraction{Var: f, Body: Application{
		Fun: Application{Fun: Variable{Index: f}, Arg: Variable{Index: x}},
		Arg: Variable{Index: y},
	}}}}
}

// ChurchFirst builds FIRST := λp. p TRUE.
func ChurchFirst(ctx *Context) Term {
	p := ctx.NewVar()
	return Abstraction{Var: p, Body: Application{Fun: Variable{Index: p}, Arg: ChurchTrue(ctx)}}
}

// ChurchSecond builds SECOND := λp. p FALSE.
func ChurchSecond(ctx *Context) Term {
	p := ctx.NewVar()
	return Abstraction{Var: p, Body: Application{Fun: Variable{Index: p}, Arg: ChurchFalse(ctx)}}
}

// ChurchPhi builds Φ := λx. PAIR (SECOND x) (SUCC (SECOND x)), the helper
// PRED is built from.
func ChurchPhi(ctx *Context) Term {
	x := ctx.NewVar()
	secondX := Application{Fun: ChurchSecond(ctx), Arg: Variable{Index: x}}
	return Abstraction{Var: x, Body: Application{
		Fun: Application{Fun: ChurchPair(ctx), Arg: secondX},
		Arg: Application{Fun: ChurchSucc(ctx), Arg: secondX},
	}}
}

// ChurchPred builds PRED := λn. FIRST (n Φ (PAIR 0 0)).
func ChurchPred(ctx *Context) Term {
	n := ctx.NewVar()
	zero := EncodeInt(ctx, 0)
	base := Application{Fun: Application{Fun: ChurchPair(ctx), Arg: zero}, Arg: zero}
	return Abstraction{Var: n, Body: Application{
		Fun: ChurchFirst(ctx),
		Arg: Application{Fun: Application{Fun: Variable{Index: n}, Arg: ChurchPhi(ctx)}, Arg: base},
	}}
}

// ChurchSub builds SUB := λm.λn. n PRED m.
func ChurchSub(ctx *Context) Term {
	m, n := ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: m, Body: Abstraction{Var: n, Body: Application{
		Fun: Application{Fun: Variable{Index: n}, Arg: ChurchPred(ctx)},
		Arg: Variable{Index: m},
	}}}
}

// ChurchIsZero builds ISZERO := λn. n (λx. FALSE) TRUE.
func ChurchIsZero(ctx *Context) Term {
	n := ctx.NewVar()
	x := ctx.NewVar()
	return Abstraction{Var: n, Body: Application{
		Fun: Application{Fun: Variable{Index: n}, Arg: Abstraction{Var: x, Body: ChurchFalse(ctx)}},
		Arg: ChurchTrue(ctx),
	}}
}

// ChurchLeq builds LEQ := λm.λn. ISZERO (SUB m n).
func ChurchLeq(ctx *Context) Term {
	m, n := ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: m, Body: Abstraction{Var: n, Body: Application{
		Fun: ChurchIsZero(ctx),
		Arg: Application{Fun: Application{Fun: ChurchSub(ctx), Arg: Variable{Index: m}}, Arg: Variable{Index: n}},
	}}}
}

// ChurchNil builds NIL := λx. TRUE, the empty-list sentinel used by the
// classic (non-Boehm-Berarducci) list encoding some combinators below
// assume.
func ChurchNil(ctx *Context) Term {
	x := ctx.NewVar()
	return Abstraction{Var: x, Body: ChurchTrue(ctx)}
}

// ChurchNull builds NULL := λp. p (λx.λy. FALSE).
func ChurchNull(ctx *Context) Term {
	p, x, y := ctx.NewVar(), ctx.NewVar(), ctx.NewVar()
	return Abstraction{Var: p, Body: Application{
		Fun: Variable{Index: p},
		Arg: Abstraction{Var: x, Body: Abstraction{Var: y, Body: ChurchFalse(ctx)}},
	}}
}

// ChurchFactorial builds FACTORIAL := Y (λf.λn. ISZERO n 1 (MULT n (f (PRED n)))).
func ChurchFactorial(ctx *Context) Term {
	f, n := ctx.NewVar(), ctx.NewVar()
	one := EncodeInt(ctx, 1)
	body := Abstraction{Var: f, Body: Abstraction{Var: n, Body: Application{
		Fun: Application{
			Fun: Application{Fun: ChurchIsZero(ctx), Arg: Variable{Index: n}},
			Arg: one,
		},
		Arg: Application{
			Fun: Application{Fun: ChurchMult(ctx), Arg: Variable{Index: n}},
			Arg: Application{Fun: Variable{Index: f}, Arg: Application{Fun: ChurchPred(ctx), Arg: Variable{Index: n}}},
		},
	}}}
	return Application{Fun: CombinatorY(ctx), Arg: body}
}
