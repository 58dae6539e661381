package symbolicmath_test

import (
	"errors"
	"math"
	"testing"

	sm "github.com/njchilds90/symbolicmath"
)

// ============================================================
// Eval tests
// ============================================================

func TestEval_ConstantFolding(t *testing.T) {
	cases := []struct {
		in   sm.Node
		want float64
	}{
		{sm.AddOf(n(2), n(3)), 5},
		{sm.SubOf(n(2), n(3)), -1},
		{sm.MulOf(n(4), n(2.5)), 10},
		{sm.DivOf(n(1), n(4)), 0.25},
		{sm.PowOf(n(2), n(10)), 1024},
		{sm.NegOf(n(3)), -3},
		{sm.AbsOf(n(-3)), 3},
		{sm.SinOf(n(0)), 0},
		{sm.CosOf(n(0)), 1},
		{sm.MulOf(sm.AddOf(n(1), n(2)), sm.SubOf(n(10), n(4))), 18},
	}
	for _, c := range cases {
		got := sm.Eval(c.in)
		if !sm.Equal(got, n(c.want)) {
			t.Errorf("eval %s: want %v, got %s", c.in, c.want, got)
		}
	}
}

func TestEval_Identities(t *testing.T) {
	cases := []struct {
		in, want sm.Node
	}{
		{sm.AddOf(x, n(0)), x},
		{sm.AddOf(n(0), x), x},
		{sm.SubOf(x, x), n(0)},
		{sm.SubOf(sm.SinOf(x), sm.SinOf(x)), n(0)},
		{sm.SubOf(x, n(0)), x},
		{sm.SubOf(n(0), x), sm.NegOf(x)},
		{sm.MulOf(x, n(1)), x},
		{sm.MulOf(n(1), x), x},
		{sm.MulOf(x, n(0)), n(0)},
		{sm.MulOf(n(0), x), n(0)},
		{sm.DivOf(n(0), x), n(0)},
		{sm.DivOf(x, n(1)), x},
		{sm.PowOf(n(0), x), n(0)},
		{sm.PowOf(n(1), x), n(1)},
		{sm.PowOf(x, n(1)), x},
		{sm.PowOf(x, n(0)), n(1)},
		{sm.LogOf(x, x), n(1)},
		{sm.LogOf(n(1), x), n(0)},
	}
	for _, c := range cases {
		if got := sm.Eval(c.in); !sm.Equal(got, c.want) {
			t.Errorf("eval %s: want %s, got %s", c.in, c.want, got)
		}
	}
}

func TestEval_PartialFold(t *testing.T) {
	in := sm.AddOf(x, sm.MulOf(n(2), n(3)))
	want := sm.AddOf(x, n(6))
	if got := sm.Eval(in); !sm.Equal(got, want) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestEval_DivisionByZero(t *testing.T) {
	got := sm.Eval(sm.DivOf(n(1), n(0)))
	num, ok := got.(*sm.Number)
	if !ok || !math.IsInf(num.Value(), 1) {
		t.Errorf("want +Inf, got %s", got)
	}
}

func TestEval_DoesNotModifyInput(t *testing.T) {
	in := sm.AddOf(n(2), sm.MulOf(x, n(1)))
	before := sm.String(in)
	sm.Eval(in)
	if sm.String(in) != before {
		t.Errorf("input changed from %s to %s", before, sm.String(in))
	}
}

// ============================================================
// Substitute tests
// ============================================================

func TestSubstitute(t *testing.T) {
	cases := []struct {
		in   sm.Node
		want float64
	}{
		{sm.AddOf(sm.MulOf(n(2), x), y), 7},
		{sm.PowOf(x, y), 3},
		{sm.DivOf(sm.SubOf(x, y), n(4)), 0.5},
		{sm.NegOf(sm.AbsOf(sm.SubOf(y, x))), -2},
		{sm.LogOf(n(8), n(2)), 3},
		{sm.SinOf(sm.MulOf(x, n(0))), 0},
	}
	bindings := map[string]float64{"x": 3, "y": 1}
	for _, c := range cases {
		got, err := sm.Substitute(c.in, bindings)
		if err != nil {
			t.Fatalf("substitute %s: unexpected error: %v", c.in, err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("substitute %s: want %v, got %v", c.in, c.want, got)
		}
	}
}

func TestSubstitute_UndefinedVariable(t *testing.T) {
	_, err := sm.Substitute(sm.Var("z"), map[string]float64{"x": 1})
	if err == nil {
		t.Fatalf("expected an error for an unbound variable")
	}
	if !errors.Is(err, sm.ErrUndefinedVariable) {
		t.Errorf("error should match ErrUndefinedVariable, got %v", err)
	}
	var uv *sm.UndefinedVariableError
	if !errors.As(err, &uv) || uv.Name != "z" {
		t.Errorf("want UndefinedVariableError for z, got %v", err)
	}
}

func TestSubstitute_DeepTree(t *testing.T) {
	var e sm.Node = x
	for i := 0; i < 10000; i++ {
		e = sm.AddOf(e, n(1))
	}
	got, err := sm.Substitute(e, map[string]float64{"x": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10005 {
		t.Errorf("want 10005, got %v", got)
	}
}
