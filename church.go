package elc

// EncodeInt builds the Church numeral for n: λa.λb. a (a ( ... (a b) ... ))
// with n applications of a (spec §4.B). Grounded on original_source's
// int_to_lc_expr, translated to fresh-index terms.
func EncodeInt(ctx *Context, n int) Term {
	if n < 0 {
		panic("elc: Church numerals are only defined for non-negative integers")
	}
	outer := ctx.NewVar()
	inner := ctx.NewVar()

	var body Term = Variable{Index: inner}
	for i := 0; i < n; i++ {
		body = Application{Fun: Variable{Index: outer}, Arg: body}
	}

	return Abstraction{Var: outer, Body: Abstraction{Var: inner, Body: body}}
}

// EncodeIntList builds the Church-encoded (Boehm-Berarducci) list of the
// given integers (spec §4.B). Every cons cell — including the empty tail —
// is its own closed λnil.λcons term, matching original_source's
// int_arr_to_lc_expr exactly: the terminal nil is innermost for an empty
// sequence, and nested inside the (unevaluated) tail otherwise.
func EncodeIntList(ctx *Context, ns []int) Term {
	nilVar := ctx.NewVar()
	consVar := ctx.NewVar()

	var body Term
	if len(ns) == 0 {
		body = Variable{Index: nilVar}
	} else {
		head := EncodeInt(ctx, ns[0])
		tail := EncodeIntList(ctx, ns[1:])
		body = Application{
			Fun: Application{Fun: Variable{Index: consVar}, Arg: head},
			Arg: tail,
		}
	}

	return Abstraction{Var: nilVar, Body: Abstraction{Var: consVar, Body: body}}
}

// DecodeBool accepts exactly λt.λf.t (true) or λt.λf.f (false) modulo alpha
// — i.e. structurally, an abstraction of two binders whose body references
// the first or the second. Any other shape fails.
func DecodeBool(t Term) (bool, bool) {
	outer, ok := t.(Abstraction)
	if !ok {
		return false, false
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		return false, false
	}
	v, ok := inner.Body.(Variable)
	if !ok {
		return false, false
	}
	switch v.Index {
	case outer.Var:
		return true, true
	case inner.Var:
		return false, true
	default:
		return false, false
	}
}

// DecodeInt accepts a Church numeral λa.λb. a(a(...b...)) and returns the
// number of applications of the outer binder, i.e. the numeral's value.
// This is the counterpart to EncodeInt's construction and to the teacher
// CLI's tryToInt reading of a numeral shape — unlike DecodeEnum below, for
// n ≥ 1 the term bottoms out in an Application chain, not a bare Variable,
// so the two decoders are not interchangeable.
func DecodeInt(t Term) (int, bool) {
	outer, ok := t.(Abstraction)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		return 0, false
	}

	count := 0
	cur := inner.Body
	for {
		if v, ok := cur.(Variable); ok {
			if v.Index == inner.Var {
				return count, true
			}
			return 0, false
		}
		app, ok := cur.(Application)
		if !ok {
			return 0, false
		}
		fv, ok := app.Fun.(Variable)
		if !ok || fv.Index != outer.Var {
			return 0, false
		}
		count++
		cur = app.Arg
	}
}

// DecodeEnum accepts a chain of n nested abstractions ending in a reference
// to the k-th binder, 0-indexed from the outermost, and returns k. Any other
// shape fails. This is the general form DecodeBool is a special case of, and
// is what the tokenizer uses to interpret a reader matcher's {0,1,2} result
// (spec §4.E) — never a Church numeral, which bottoms out in an Application
// chain rather than a bare Variable.
func DecodeEnum(t Term) (int, bool) {
	positions := make(map[VarID]int)
	cur := t
	for {
		abs, ok := cur.(Abstraction)
		if !ok {
			break
		}
		positions[abs.Var] = len(positions)
		cur = abs.Body
	}
	v, ok := cur.(Variable)
	if !ok {
		return 0, false
	}
	idx, ok := positions[v.Index]
	if !ok {
		return 0, false
	}
	return idx, true
}
