package symbolicmath

import "math"

func (u *Unary) LaTeX() string {
	arg := u.arg.LaTeX()
	switch u.op {
	case Sin, Cos, Tan:
		return `\` + u.op.String() + `\left(` + arg + `\right)`
	case Abs:
		return `\left|` + arg + `\right|`
	case Negate:
		if IsLeaf(u.arg) {
			return "-" + arg
		}
		return `-\left(` + arg + `\right)`
	}
	unsupported(u.op)
	return ""
}

func (b *Binary) LaTeX() string {
	l, r := b.left.LaTeX(), b.right.LaTeX()
	switch b.op {
	case Add:
		return `\left(` + l + " + " + r + `\right)`
	case Subtract:
		return `\left(` + l + " - " + r + `\right)`
	case Multiply:
		return l + ` \cdot ` + r
	case Divide:
		return `\frac{` + l + "}{" + r + "}"
	case Power:
		if needsGrouping(b.left) {
			l = `\left(` + l + `\right)`
		}
		return "{" + l + "}^{" + r + "}"
	case Log:
		if isNum(b.right, math.E) {
			return `\ln\left(` + l + `\right)`
		}
		return `\log_{` + r + `}\left(` + l + `\right)`
	}
	unsupported(b.op)
	return ""
}

// needsGrouping reports whether n must be parenthesized as a power base.
// Sums and differences carry their own parentheses.
func needsGrouping(n Node) bool {
	switch v := n.(type) {
	case *Binary:
		return v.op != Add && v.op != Subtract
	case *Unary:
		return v.op == Negate
	}
	return false
}
