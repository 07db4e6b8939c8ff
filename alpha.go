package elc

// AlphaRename produces an alpha-equivalent copy of t in which every bound
// variable has been rebound to a freshly allocated index (spec §4.C). Free
// variables are left untouched unless present in one of the optional seed
// maps; the maps are merged in order, so a later map overrides an earlier
// one for the same key.
//
// The result shares no bound-variable index with t: every binder it
// introduces is brand new, which is what makes it safe to splice into any
// other scope (a top-level name's body on lookup, or a thunk's contents on
// forcing) without risking capture.
func AlphaRename(ctx *Context, t Term, freeVars ...map[VarID]VarID) Term {
	seed := map[VarID]VarID{}
	for _, m := range freeVars {
		for k, v := range m {
			seed[k] = v
		}
	}
	return alphaRename(ctx, t, seed)
}

func alphaRename(ctx *Context, t Term, renames map[VarID]VarID) Term {
	switch n := t.(type) {
	case Abstraction:
		fresh := ctx.NewVar()
		child := make(map[VarID]VarID, len(renames)+1)
		for k, v := range renames {
			child[k] = v
		}
		child[n.Var] = fresh
		return Abstraction{Var: fresh, Body: alphaRename(ctx, n.Body, child)}
	case Application:
		return Application{
			Fun: alphaRename(ctx, n.Fun, renames),
			Arg: alphaRename(ctx, n.Arg, renames),
		}
	case Variable:
		if fresh, ok := renames[n.Index]; ok {
			return Variable{Index: fresh}
		}
		return n
	default:
		panic("elc: unknown term variant in alpha-rename")
	}
}
