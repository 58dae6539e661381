package symbolicmath

import "math"

// ============================================================
// Evaluator - constant folding
// ============================================================

// Eval folds constant subtrees and applies the operator identities
// (x+0, x-x, x*1, x*0, 0/x, x/1, 0^x, 1^x, x^1, x^0, log(x,x), log(1,x)).
// Division and logarithms follow float64 semantics; no domain checks are
// made, so results may be ±Inf or NaN.
func Eval(n Node) Node {
	switch v := n.(type) {
	case *Unary:
		return evalUnary(v.op, Eval(v.arg))
	case *Binary:
		return evalBinary(v.op, Eval(v.left), Eval(v.right))
	}
	return n
}

func evalUnary(op UnaryOp, arg Node) Node {
	if n, ok := arg.(*Number); ok {
		return Num(applyUnary(op, n.value))
	}
	return UnaryOf(op, arg)
}

func evalBinary(op BinaryOp, l, r Node) Node {
	ln, lok := l.(*Number)
	rn, rok := r.(*Number)
	if lok && rok {
		return Num(applyBinary(op, ln.value, rn.value))
	}
	switch op {
	case Add:
		if hasOperand(l, r, 0) {
			return otherOperand(l, r, 0)
		}
	case Subtract:
		switch {
		case l.Equal(r):
			return Num(0)
		case isNum(r, 0):
			return l
		case isNum(l, 0):
			return NegOf(r)
		}
	case Multiply:
		if hasOperand(l, r, 1) {
			return otherOperand(l, r, 1)
		}
		if hasOperand(l, r, 0) {
			return Num(0)
		}
	case Divide:
		switch {
		case isNum(l, 0):
			return Num(0)
		case isNum(r, 1):
			return l
		}
	case Power:
		switch {
		case isNum(l, 0), isNum(l, 1):
			return l
		case isNum(r, 1):
			return l
		case isNum(r, 0):
			return Num(1)
		}
	case Log:
		switch {
		case l.Equal(r):
			return Num(1)
		case isNum(l, 1):
			return Num(0)
		}
	}
	return BinaryOf(op, l, r)
}

func hasOperand(l, r Node, v float64) bool { return isNum(l, v) || isNum(r, v) }

// otherOperand returns the operand that is not the literal v.
func otherOperand(l, r Node, v float64) Node {
	switch {
	case isNum(l, v):
		return r
	case isNum(r, v):
		return l
	}
	invariant("neither %s nor %s is %s", l, r, formatFloat(v))
	return nil
}

func applyUnary(op UnaryOp, x float64) float64 {
	switch op {
	case Sin:
		return math.Sin(x)
	case Cos:
		return math.Cos(x)
	case Tan:
		return math.Tan(x)
	case Abs:
		return math.Abs(x)
	case Negate:
		return -x
	}
	unsupported(op)
	return 0
}

func applyBinary(op BinaryOp, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	case Power:
		return math.Pow(a, b)
	case Log:
		return math.Log(a) / math.Log(b)
	}
	unsupported(op)
	return 0
}

// ============================================================
// Substitute - numeric evaluation under bindings
// ============================================================

// Substitute evaluates n with every variable replaced by its value in
// bindings. A variable without a binding yields an *UndefinedVariableError.
//
// The traversal keeps its own stack, so deep trees do not grow the
// goroutine stack.
func Substitute(n Node, bindings map[string]float64) (float64, error) {
	type frame struct {
		node     Node
		expanded bool
	}
	stack := []frame{{node: n}}
	var vals []float64
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := f.node.(type) {
		case *Number:
			vals = append(vals, v.value)
		case *Variable:
			x, ok := bindings[v.name]
			if !ok {
				return 0, &UndefinedVariableError{Name: v.name}
			}
			vals = append(vals, x)
		case *Unary:
			if !f.expanded {
				stack = append(stack, frame{node: v, expanded: true}, frame{node: v.arg})
				continue
			}
			top := len(vals) - 1
			vals[top] = applyUnary(v.op, vals[top])
		case *Binary:
			if !f.expanded {
				stack = append(stack, frame{node: v, expanded: true}, frame{node: v.right}, frame{node: v.left})
				continue
			}
			top := len(vals) - 1
			vals[top-1] = applyBinary(v.op, vals[top-1], vals[top])
			vals = vals[:top]
		default:
			unsupported(f.node)
		}
	}
	if len(vals) != 1 {
		invariant("substitute left %d values on the stack", len(vals))
	}
	return vals[0], nil
}
