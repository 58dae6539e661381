package symbolicmath

import (
	"strings"
	"testing"
)

// ============================================================
// Hash tests
// ============================================================

func TestHash(t *testing.T) {
	x, y := Var("x"), Var("y")
	cases := []struct {
		node  Node
		level HashLevel
		want  string
	}{
		{Num(2), HashHigh, ""},
		{Num(2), HashMedium, ""},
		{Num(2), HashLow, "2"},
		{x, HashHigh, "var1:x"},
		{x, HashLow, "var1:x"},
		{MulOf(Num(2), x), HashHigh, "var1:x"},
		{MulOf(Num(2), x), HashLow, "mul+2+var1:x"},
		{AddOf(x, y), HashHigh, "var1:x+var1:y"},
		{SinOf(x), HashHigh, "sin"},
		{SinOf(x), HashLow, "sin+var1:x"},
		{PatternOf(3, AnyPattern), HashHigh, "Any3"},
		{PatternOf(3, AnyPattern), HashLow, "Any"},
	}
	for _, c := range cases {
		if got := Hash(c.node, c.level); got != c.want {
			t.Errorf("hash %s at %s: want %q, got %q", c.node, c.level, c.want, got)
		}
	}
}

func TestHash_HighIgnoresCoefficients(t *testing.T) {
	a := MulOf(Num(3), Var("x"))
	b := MulOf(Num(7), Var("x"))
	if Hash(a, HashHigh) != Hash(b, HashHigh) {
		t.Errorf("3x and 7x should share a high-level hash")
	}
	if Hash(a, HashLow) == Hash(b, HashLow) {
		t.Errorf("3x and 7x should differ at the low level")
	}
}

func TestHash_LowSeparatesIdentifiersContainingPlus(t *testing.T) {
	odd := AddOf(Var("p+add+var+q"), Var("r"))
	nested := AddOf(Var("p"), AddOf(Var("q"), Var("r")))
	if a, b := Hash(odd, HashLow), Hash(nested, HashLow); a == b {
		t.Errorf("%s and %s share the low-level hash %q", odd, nested, a)
	}
}

func TestHash_SkipsEmptySides(t *testing.T) {
	x := Var("x")
	cases := []struct {
		node Node
		want string
	}{
		{AddOf(Num(1), MulOf(Num(2), Num(3))), ""},
		{AddOf(MulOf(Num(2), Num(3)), x), "var1:x"},
		{AddOf(x, MulOf(Num(2), Num(3))), "var1:x"},
		{SubOf(MulOf(Num(2), x), AddOf(Num(1), SinOf(x))), "var1:x+sin"},
	}
	for _, c := range cases {
		if got := Hash(c.node, HashHigh); got != c.want {
			t.Errorf("hash %s: want %q, got %q", c.node, c.want, got)
		}
	}
}

func TestHash_DeepChain(t *testing.T) {
	x := Var("x")
	var e Node = x
	for i := 0; i < 2000; i++ {
		e = AddOf(e, MulOf(Num(2), x))
	}
	low := Hash(e, HashLow)
	if want := 2000*len("add+") + 2000*len("+mul+2+var1:x") + len("var1:x"); len(low) != want {
		t.Errorf("want a %d byte hash, got %d bytes", want, len(low))
	}
	high := Hash(e, HashHigh)
	if want := strings.Repeat("var1:x+", 2000) + "var1:x"; high != want {
		t.Errorf("high-level hash of the chain is wrong: %d bytes", len(high))
	}
}

// ============================================================
// Linear children tests
// ============================================================

func TestLinearChildren_Sum(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	// x - (y + -(z)) flattens to x, -y, +z
	got := linearChildren(SubOf(x, AddOf(y, NegOf(z))), Add, Subtract)
	want := []linearChild{{x, keep}, {y, inverted}, {z, keep}}
	if len(got) != len(want) {
		t.Fatalf("want %d children, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].node.Equal(want[i].node) || got[i].tag != want[i].tag {
			t.Errorf("child %d: want %s/%d, got %s/%d", i, want[i].node, want[i].tag, got[i].node, got[i].tag)
		}
	}
}

func TestLinearChildren_ProductNegate(t *testing.T) {
	x, y := Var("x"), Var("y")
	got := linearChildren(DivOf(NegOf(x), y), Multiply, Divide)
	want := []linearChild{{Num(-1), keep}, {x, keep}, {y, inverted}}
	if len(got) != len(want) {
		t.Fatalf("want %d children, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].node.Equal(want[i].node) || got[i].tag != want[i].tag {
			t.Errorf("child %d: want %s/%d, got %s/%d", i, want[i].node, want[i].tag, got[i].node, got[i].tag)
		}
	}
}

func TestLinearChildren_StopsAtOtherOperators(t *testing.T) {
	x, y := Var("x"), Var("y")
	got := linearChildren(AddOf(MulOf(x, y), SinOf(x)), Add, Subtract)
	if len(got) != 2 {
		t.Fatalf("want 2 children, got %d", len(got))
	}
}

// ============================================================
// multiHang tests
// ============================================================

func TestMultiHang(t *testing.T) {
	x, y := Var("x"), Var("y")
	cases := []struct {
		in      []linearChild
		want    Node
		wantTag linearTag
	}{
		{[]linearChild{{x, keep}, {y, keep}}, AddOf(x, y), keep},
		{[]linearChild{{x, keep}, {y, inverted}}, SubOf(x, y), keep},
		{[]linearChild{{x, inverted}, {y, keep}}, SubOf(y, x), keep},
		{[]linearChild{{x, inverted}, {y, inverted}}, AddOf(x, y), inverted},
		{[]linearChild{{x, inverted}}, x, inverted},
	}
	for _, c := range cases {
		got, tag := multiHang(c.in, Add, Subtract)
		if !got.Equal(c.want) || tag != c.wantTag {
			t.Errorf("want %s/%d, got %s/%d", c.want, c.wantTag, got, tag)
		}
	}
}

// ============================================================
// Sort tests
// ============================================================

func TestSort(t *testing.T) {
	x, y := Var("x"), Var("y")
	cases := []struct {
		name     string
		in, want Node
	}{
		{"commute", AddOf(y, x), AddOf(x, y)},
		{"difference", SubOf(y, x), SubOf(y, x)},
		{"negated term", AddOf(NegOf(x), y), SubOf(y, x)},
		{"all negated", SubOf(NegOf(x), y), NegOf(AddOf(x, y))},
		{"numbers first", MulOf(x, Num(3)), MulOf(Num(3), x)},
		{"negated factor", MulOf(NegOf(x), y), MulOf(Num(-1), MulOf(x, y))},
		{"quotient", DivOf(y, x), DivOf(y, x)},
		{"reciprocal", DivOf(Num(1), MulOf(x, y)), DivOf(Num(1), MulOf(x, y))},
		{
			"like terms grouped",
			AddOf(MulOf(Num(3), x), AddOf(y, MulOf(Num(2), x))),
			AddOf(AddOf(MulOf(Num(3), x), MulOf(Num(2), x)), y),
		},
		{"coefficients grouped", MulOf(Num(2), MulOf(x, Num(3))), MulOf(MulOf(Num(2), Num(3)), x)},
		{"inside functions", SinOf(AddOf(y, x)), SinOf(AddOf(x, y))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sort(c.in, HashHigh); !got.Equal(c.want) {
				t.Errorf("want %s, got %s", c.want, got)
			}
		})
	}
}

func TestSort_LowSeparatesCoefficients(t *testing.T) {
	x, y := Var("x"), Var("y")
	in := AddOf(MulOf(Num(3), x), AddOf(y, MulOf(Num(2), x)))
	// low-level hashes: "mul+2+var1:x" < "mul+3+var1:x" < "var1:y"
	want := AddOf(MulOf(Num(2), x), AddOf(MulOf(Num(3), x), y))
	if got := Sort(in, HashLow); !got.Equal(want) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestSort_DoesNotShareInput(t *testing.T) {
	in := AddOf(Var("y"), Var("x"))
	out := Sort(in, HashHigh)
	if out.(*Binary).left == in.(*Binary).right {
		t.Errorf("sorted tree should not alias the input leaves")
	}
}
