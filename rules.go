package symbolicmath

import "sync"

// Pattern placeholders used by the common rules. Any keys enforce equal
// subtrees on repetition; Position keys only carry a subtree to the
// output.
var (
	any1 = PatternOf(1, AnyPattern)
	any2 = PatternOf(2, AnyPattern)

	var1 = PatternOf(11, VariablePattern)

	const1 = PatternOf(21, ConstantPattern)
	const2 = PatternOf(22, ConstantPattern)

	pos1 = PatternOf(31, PositionPattern)
	pos2 = PatternOf(32, PositionPattern)
	pos3 = PatternOf(33, PositionPattern)
)

var (
	commonRulesOnce sync.Once
	commonRules     Ruleset
)

// CommonRules returns the default simplification ruleset. The table is
// built once and shared; the returned slice is a copy, so callers may
// extend it freely.
func CommonRules() Ruleset {
	commonRulesOnce.Do(func() { commonRules = buildCommonRules() })
	return append(Ruleset(nil), commonRules...)
}

func buildCommonRules() Ruleset {
	n := func(v float64) Node { return Num(v) }

	return Ruleset{
		// ----- trigonometric -----

		// sin(a) * cos(a) = 0.5 * sin(2 * a)
		NewRule(MulOf(SinOf(any1), CosOf(any1)), MulOf(n(0.5), SinOf(MulOf(n(2), any1)))),
		NewRule(MulOf(CosOf(any1), SinOf(any1)), MulOf(n(0.5), SinOf(MulOf(n(2), any1)))),

		// ----- logarithmic -----

		// log(a ^ -1, b) = -(log(a, b))
		NewRule(LogOf(PowOf(any1, n(-1)), any2), NegOf(LogOf(any1, any2))),

		// ----- signs -----

		// -(-(a)) = a
		NewRule(NegOf(NegOf(pos1)), pos1),
		// a - -(b) = a + b, a + -(b) = a - b
		NewRule(SubOf(pos1, NegOf(pos2)), AddOf(pos1, pos2)),
		NewRule(AddOf(pos1, NegOf(pos2)), SubOf(pos1, pos2)),

		// ----- exponential -----

		// a * a = a ^ 2
		NewRule(MulOf(any1, any1), PowOf(any1, n(2))),

		// (a ^ b) ^ c = a ^ (b * c)
		NewRule(PowOf(PowOf(pos1, pos2), pos3), PowOf(pos1, MulOf(pos2, pos3))),

		// a / (a ^ b) = a ^ (1 - b), (a ^ b) / a = a ^ (b - 1)
		NewRule(DivOf(any1, PowOf(any1, pos1)), PowOf(any1, SubOf(n(1), pos1))),
		NewRule(DivOf(PowOf(any1, pos1), any1), PowOf(any1, SubOf(pos1, n(1)))),

		// (a ^ b) / (a ^ c) = a ^ (b - c)
		NewRule(DivOf(PowOf(any1, pos1), PowOf(any1, pos2)), PowOf(any1, SubOf(pos1, pos2))),

		// a * (a ^ b) = a ^ (1 + b), (a ^ b) * a = a ^ (1 + b)
		NewRule(MulOf(any1, PowOf(any1, pos1)), PowOf(any1, AddOf(n(1), pos1))),
		NewRule(MulOf(PowOf(any1, pos1), any1), PowOf(any1, AddOf(n(1), pos1))),

		// (a ^ b) * (a ^ c) = a ^ (b + c)
		NewRule(MulOf(PowOf(any1, pos1), PowOf(any1, pos2)), PowOf(any1, AddOf(pos1, pos2))),

		// 1 / (a ^ b) = a ^ -(b)
		NewRule(DivOf(n(1), PowOf(pos1, pos2)), PowOf(pos1, NegOf(pos2))),

		// 1 / a = a ^ -1
		NewRule(DivOf(n(1), pos1), PowOf(pos1, n(-1))),

		// ----- addition and subtraction -----

		// a + a = 2 * a
		NewRule(AddOf(any1, any1), MulOf(n(2), any1)),

		// a + (b * a) = (1 + b) * a, and its mirrors
		NewRule(AddOf(any1, MulOf(pos1, any1)), MulOf(AddOf(n(1), pos1), any1)),
		NewRule(AddOf(any1, MulOf(any1, pos1)), MulOf(AddOf(n(1), pos1), any1)),
		NewRule(AddOf(MulOf(pos1, any1), any1), MulOf(AddOf(n(1), pos1), any1)),
		NewRule(AddOf(MulOf(any1, pos1), any1), MulOf(AddOf(n(1), pos1), any1)),

		// a - (b * a) = (1 - b) * a, (b * a) - a = (b - 1) * a
		NewRule(SubOf(any1, MulOf(pos1, any1)), MulOf(SubOf(n(1), pos1), any1)),
		NewRule(SubOf(any1, MulOf(any1, pos1)), MulOf(SubOf(n(1), pos1), any1)),
		NewRule(SubOf(MulOf(pos1, any1), any1), MulOf(SubOf(pos1, n(1)), any1)),
		NewRule(SubOf(MulOf(any1, pos1), any1), MulOf(SubOf(pos1, n(1)), any1)),

		// (b * a) + (c * a) = (b + c) * a
		NewRule(AddOf(MulOf(pos1, any1), MulOf(pos2, any1)), MulOf(AddOf(pos1, pos2), any1)),
		NewRule(AddOf(MulOf(pos1, any1), MulOf(any1, pos2)), MulOf(AddOf(pos1, pos2), any1)),
		NewRule(AddOf(MulOf(any1, pos1), MulOf(pos2, any1)), MulOf(AddOf(pos1, pos2), any1)),
		NewRule(AddOf(MulOf(any1, pos1), MulOf(any1, pos2)), MulOf(AddOf(pos1, pos2), any1)),

		// (b * a) - (c * a) = (b - c) * a
		NewRule(SubOf(MulOf(pos1, any1), MulOf(pos2, any1)), MulOf(SubOf(pos1, pos2), any1)),
		NewRule(SubOf(MulOf(pos1, any1), MulOf(any1, pos2)), MulOf(SubOf(pos1, pos2), any1)),
		NewRule(SubOf(MulOf(any1, pos1), MulOf(pos2, any1)), MulOf(SubOf(pos1, pos2), any1)),
		NewRule(SubOf(MulOf(any1, pos1), MulOf(any1, pos2)), MulOf(SubOf(pos1, pos2), any1)),

		// ----- multiplication and division -----

		// x * c = c * x
		NewRule(MulOf(var1, const1), MulOf(const1, var1)),
		// c * (d * a) = (c * d) * a
		NewRule(MulOf(const1, MulOf(const2, pos1)), MulOf(MulOf(const1, const2), pos1)),

		// a / (b / c) = (a * c) / b, (a / b) / c = a / (b * c)
		NewRule(DivOf(pos1, DivOf(pos2, pos3)), DivOf(MulOf(pos1, pos3), pos2)),
		NewRule(DivOf(DivOf(pos1, pos2), pos3), DivOf(pos1, MulOf(pos2, pos3))),

		// (a / b) + (a * c) = a * (b ^ -1 + c)
		NewRule(AddOf(DivOf(any1, pos1), MulOf(any1, pos2)), MulOf(any1, AddOf(PowOf(pos1, n(-1)), pos2))),
		NewRule(AddOf(DivOf(any1, pos1), MulOf(pos2, any1)), MulOf(any1, AddOf(PowOf(pos1, n(-1)), pos2))),
		NewRule(AddOf(MulOf(any1, pos2), DivOf(any1, pos1)), MulOf(any1, AddOf(PowOf(pos1, n(-1)), pos2))),
		NewRule(AddOf(MulOf(pos2, any1), DivOf(any1, pos1)), MulOf(any1, AddOf(PowOf(pos1, n(-1)), pos2))),
	}
}
