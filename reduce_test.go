package elc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceIdentityApplication(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	x := ctx.NewVar()
	identity := Abstraction{Var: x, Body: Variable{Index: x}}
	y := ctx.NewVar()
	arg := Abstraction{Var: y, Body: Variable{Index: y}}

	result := reducer.Reduce(Application{Fun: identity, Arg: arg})

	abs, ok := result.(Abstraction)
	if !ok {
		t.Fatalf("expected (I I) to reduce back to an abstraction, got %s", result)
	}
	v, ok := abs.Body.(Variable)
	if !ok || v.Index != abs.Var {
		t.Errorf("expected identity shape, got %s", result)
	}
}

func TestReduceKCombinatorDropsSecondArgument(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	k := CombinatorK(ctx)
	a := EncodeInt(ctx, 1)
	b := EncodeInt(ctx, 2)

	result := reducer.Reduce(Application{Fun: Application{Fun: k, Arg: a}, Arg: b})
	n, ok := DecodeInt(result)
	require.New(t).True(ok)
	require.New(t).Equal(1, n)
}

func TestReduceChurchSuccOfTwoIsThree(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	succ := ChurchSucc(ctx)
	two := EncodeInt(ctx, 2)

	result := reducer.Reduce(Application{Fun: succ, Arg: two})
	n, ok := DecodeInt(result)
	if !ok || n != 3 {
		t.Errorf("expected SUCC 2 = 3, got %d ok=%v", n, ok)
	}
}

func TestReducePlusAddsChurchNumerals(t *testing.T) {
	require := require.New(t)
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	plus := ChurchPlus(ctx)
	two := EncodeInt(ctx, 2)
	three := EncodeInt(ctx, 3)

	result := reducer.Reduce(Application{Fun: Application{Fun: plus, Arg: two}, Arg: three})
	n, ok := DecodeInt(result)
	require.True(ok)
	require.Equal(5, n)
}

func TestReduceFactorialOfFour(t *testing.T) {
	require := require.New(t)
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	fact := ChurchFactorial(ctx)
	four := EncodeInt(ctx, 4)

	result := reducer.Reduce(Application{Fun: fact, Arg: four})
	n, ok := DecodeInt(result)
	require.True(ok)
	require.Equal(24, n)
}

func TestReduceIsIdempotentOnAlreadyNormalTerms(t *testing.T) {
	ctx := NewContext(nil)
	reducer := NewReducer(ctx)

	x := ctx.NewVar()
	normal := Abstraction{Var: x, Body: Variable{Index: x}}

	once := reducer.Reduce(normal)
	abs, ok := once.(Abstraction)
	if !ok {
		t.Fatalf("expected abstraction, got %s", once)
	}
	v, ok := abs.Body.(Variable)
	if !ok || v.Index != abs.Var {
		t.Errorf("expected an already-normal term to pass through unchanged in shape")
	}
}
