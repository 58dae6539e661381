package symbolicmath

// ============================================================
// Differentiator
// ============================================================

// Derive returns d(n)/d(variable) as an unsimplified tree. Pass the result
// to Simplify (or use Diff) for a readable form.
func Derive(n Node, variable string) Node {
	switch v := n.(type) {
	case *Number:
		return Num(0)
	case *Variable:
		if v.name == variable {
			return Num(1)
		}
		return Num(0)
	case *Unary:
		return deriveUnary(v.op, v.arg, variable)
	case *Binary:
		return deriveBinary(v.op, v.left, v.right, variable)
	}
	unsupported(n)
	return nil
}

func deriveUnary(op UnaryOp, x Node, variable string) Node {
	dx := Derive(x, variable)
	switch op {
	case Sin:
		// sin(x)' = cos(x) * x'
		return MulOf(CosOf(x), dx)
	case Cos:
		// cos(x)' = -(sin(x)) * x'
		return MulOf(NegOf(SinOf(x)), dx)
	case Tan:
		// tan(x)' = x' / cos(x)^2
		return DivOf(dx, PowOf(CosOf(x), Num(2)))
	case Abs:
		// |x|' = (x / |x|) * x', undefined at 0
		return MulOf(DivOf(x, AbsOf(x)), dx)
	case Negate:
		return deriveBinary(Multiply, Num(-1), x, variable)
	}
	unsupported(op)
	return nil
}

func deriveBinary(op BinaryOp, l, r Node, variable string) Node {
	switch op {
	case Add, Subtract:
		// (a ± b)' = a' ± b'
		return BinaryOf(op, Derive(l, variable), Derive(r, variable))
	case Multiply:
		// (a * b)' = a' * b + b' * a
		return AddOf(MulOf(Derive(l, variable), r), MulOf(Derive(r, variable), l))
	case Divide:
		// (a / b)' = (a' * b - b' * a) / b^2
		return DivOf(
			SubOf(MulOf(Derive(l, variable), r), MulOf(Derive(r, variable), l)),
			PowOf(r, Num(2)),
		)
	case Power:
		return derivePower(l, r, variable)
	case Log:
		// log(a, b) = ln(a) / ln(b)
		// log(a, b)' = ((a' / a) * ln(b) - ln(a) * (b' / b)) / ln(b)^2
		return DivOf(
			SubOf(
				MulOf(DivOf(Derive(l, variable), l), LnOf(r)),
				MulOf(LnOf(l), DivOf(Derive(r, variable), r)),
			),
			PowOf(LnOf(r), Num(2)),
		)
	}
	unsupported(op)
	return nil
}

func derivePower(base, exp Node, variable string) Node {
	if c, ok := exp.(*Number); ok {
		// (a ^ c)' = c * (a ^ (c - 1) * a')
		return MulOf(Num(c.value), MulOf(PowOf(base, Num(c.value-1)), Derive(base, variable)))
	}
	if _, ok := base.(*Number); ok {
		// (c ^ b)' = (c ^ b * ln(c)) * b'
		return MulOf(MulOf(PowOf(base, exp), LnOf(base)), Derive(exp, variable))
	}
	// (a ^ b)' = a ^ b * (b' * ln(a) + (b * a') / a)
	return MulOf(
		PowOf(base, exp),
		AddOf(
			MulOf(Derive(exp, variable), LnOf(base)),
			DivOf(MulOf(exp, Derive(base, variable)), base),
		),
	)
}

// Diff returns the simplified derivative of n with respect to variable.
func Diff(n Node, variable string) Node { return Simplify(Derive(n, variable)) }

// DiffN returns the k-th derivative of n, simplifying after each step.
func DiffN(n Node, variable string, k int) Node {
	result := n
	for i := 0; i < k; i++ {
		result = Diff(result, variable)
	}
	return result
}
