package elc

import "testing"

func TestAlphaRenameProducesFreshBinders(t *testing.T) {
	ctx := NewContext(nil)
	x := ctx.NewVar()
	original := Abstraction{Var: x, Body: Variable{Index: x}}

	renamed := AlphaRename(ctx, original)

	abs, ok := renamed.(Abstraction)
	if !ok {
		t.Fatalf("expected an abstraction back")
	}
	if abs.Var == x {
		t.Errorf("expected a fresh binder, got the original index %d back", x)
	}
	v, ok := abs.Body.(Variable)
	if !ok || v.Index != abs.Var {
		t.Errorf("expected the body to reference the new binder, got %+v", abs.Body)
	}
}

func TestAlphaRenameLeavesFreeVariablesAlone(t *testing.T) {
	ctx := NewContext(nil)
	free := ctx.NewVar()
	bound := ctx.NewVar()

	original := Abstraction{Var: bound, Body: Application{
		Fun: Variable{Index: bound},
		Arg: Variable{Index: free},
	}}

	renamed := AlphaRename(ctx, original).(Abstraction)
	app := renamed.Body.(Application)

	if app.Arg.(Variable).Index != free {
		t.Errorf("expected the free variable to be left untouched")
	}
	if app.Fun.(Variable).Index != renamed.Var {
		t.Errorf("expected the bound occurrence to track the new binder")
	}
}

func TestAlphaRenameTwoCallsDontCollide(t *testing.T) {
	ctx := NewContext(nil)
	x := ctx.NewVar()
	original := Abstraction{Var: x, Body: Variable{Index: x}}

	a := AlphaRename(ctx, original).(Abstraction)
	b := AlphaRename(ctx, original).(Abstraction)

	if a.Var == b.Var {
		t.Errorf("expected two independent renamings to allocate distinct binders")
	}
}
