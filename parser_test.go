package elc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	term, err := Parse(ctx, reducer, `\x. x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abs, ok := term.(Abstraction)
	if !ok {
		t.Fatalf("expected an abstraction, got %s", term)
	}
	v, ok := abs.Body.(Variable)
	if !ok || v.Index != abs.Var {
		t.Errorf("expected body to reference the bound variable, got %s", term)
	}
}

func TestParseApplication(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	term, err := Parse(ctx, reducer, `(\x. x) (\y. y)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := term.(Application); !ok {
		t.Fatalf("expected an application, got %s", term)
	}
}

func TestParseMultiArgAbstraction(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	term, err := Parse(ctx, reducer, `\x y. x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := term.(Abstraction)
	if !ok {
		t.Fatalf("expected nested abstractions, got %s", term)
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		t.Fatalf("expected a second binder, got %s", term)
	}
	v, ok := inner.Body.(Variable)
	if !ok || v.Index != outer.Var {
		t.Errorf("expected body to reference the first binder (K shape), got %s", term)
	}
}

func TestParseUnboundVariableErrors(t *testing.T) {
	require := require.New(t)
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	_, err := Parse(ctx, reducer, "nonexistent")
	require.Error(err)
	require.Contains(err.Error(), "nonexistent")
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	if _, err := Parse(ctx, reducer, `(`); err == nil {
		t.Errorf("expected an error on an unterminated paren")
	}
	if _, err := Parse(ctx, reducer, `\x`); err == nil {
		t.Errorf("expected an error on an unterminated abstraction")
	}
}

func TestParseResolvesTopLevelAssignment(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	x := ctx.NewVar()
	ctx.Assignments["id"] = Abstraction{Var: x, Body: Variable{Index: x}}

	term, err := Parse(ctx, reducer, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := term.(Abstraction); !ok {
		t.Fatalf("expected the assignment's term to come back, got %s", term)
	}
}

func TestParseTwoUsesOfAnAssignmentDontAliasBinders(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	x := ctx.NewVar()
	ctx.Assignments["id"] = Abstraction{Var: x, Body: Variable{Index: x}}

	first, err := Parse(ctx, reducer, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Parse(ctx, reducer, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.(Abstraction).Var == second.(Abstraction).Var {
		t.Errorf("expected each lookup to alpha-rename to a fresh binder")
	}
}
