// Package symbolicmath provides a small symbolic algebra core for Go.
//
// Design goals:
//   - Expressions are immutable binary/unary trees over float64 literals
//   - Constant folding, symbolic derivatives and numeric substitution
//   - Rule-based simplification with associative/commutative canonicalization
//   - Deterministic output
package symbolicmath

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// Core Interface
// ============================================================

// Node is a node of an expression tree. The set of implementations is
// closed: *Number, *Variable, *Unary, *Binary and *Pattern.
type Node interface {
	String() string
	LaTeX() string
	Equal(other Node) bool
	Clone() Node
	nodeType() string
}

// ============================================================
// Operators
// ============================================================

type UnaryOp int

const (
	Sin UnaryOp = iota
	Cos
	Tan
	Abs
	Negate
)

var unaryNames = [...]string{Sin: "sin", Cos: "cos", Tan: "tan", Abs: "abs", Negate: "negate"}

func (op UnaryOp) String() string {
	if op < 0 || int(op) >= len(unaryNames) {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return unaryNames[op]
}

type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Power
	// Log(a, b) is the logarithm of a in base b.
	Log
)

var binaryNames = [...]string{Add: "add", Subtract: "sub", Multiply: "mul", Divide: "div", Power: "pow", Log: "log"}
var binarySymbols = [...]string{Add: "+", Subtract: "-", Multiply: "*", Divide: "/", Power: "^", Log: "LOG"}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryNames) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binaryNames[op]
}

// Symbol returns the infix symbol used by String.
func (op BinaryOp) Symbol() string {
	if op < 0 || int(op) >= len(binarySymbols) {
		unsupported(op)
	}
	return binarySymbols[op]
}

// ============================================================
// Number - float64 literal
// ============================================================

type Number struct{ value float64 }

func Num(v float64) *Number { return &Number{value: v} }

func (n *Number) Value() float64   { return n.value }
func (n *Number) String() string   { return formatFloat(n.value) }
func (n *Number) Clone() Node      { return &Number{value: n.value} }
func (n *Number) nodeType() string { return "num" }
func (n *Number) Equal(other Node) bool {
	o, ok := other.(*Number)
	return ok && o.value == n.value
}

func (n *Number) LaTeX() string {
	switch {
	case math.IsInf(n.value, 1):
		return `\infty`
	case math.IsInf(n.value, -1):
		return `-\infty`
	}
	return formatFloat(n.value)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// isNum reports whether n is the literal v.
func isNum(n Node, v float64) bool {
	num, ok := n.(*Number)
	return ok && num.value == v
}

// ============================================================
// Variable - named symbol
// ============================================================

type Variable struct{ name string }

func Var(name string) *Variable { return &Variable{name: name} }

func (v *Variable) Name() string     { return v.name }
func (v *Variable) String() string   { return v.name }
func (v *Variable) LaTeX() string    { return v.name }
func (v *Variable) Clone() Node      { return &Variable{name: v.name} }
func (v *Variable) nodeType() string { return "var" }
func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && o.name == v.name
}

// ============================================================
// Unary - single-argument operator
// ============================================================

type Unary struct {
	op  UnaryOp
	arg Node
}

func UnaryOf(op UnaryOp, arg Node) *Unary { return &Unary{op: op, arg: arg} }

func (u *Unary) Op() UnaryOp      { return u.op }
func (u *Unary) Arg() Node        { return u.arg }
func (u *Unary) Clone() Node      { return &Unary{op: u.op, arg: u.arg.Clone()} }
func (u *Unary) nodeType() string { return "unary" }
func (u *Unary) Equal(other Node) bool {
	o, ok := other.(*Unary)
	return ok && o.op == u.op && u.arg.Equal(o.arg)
}

func (u *Unary) String() string {
	switch u.op {
	case Sin, Cos, Tan, Abs:
		return u.op.String() + "(" + u.arg.String() + ")"
	case Negate:
		return "-(" + u.arg.String() + ")"
	}
	unsupported(u.op)
	return ""
}

// ============================================================
// Binary - two-argument operator
// ============================================================

type Binary struct {
	op          BinaryOp
	left, right Node
}

func BinaryOf(op BinaryOp, left, right Node) *Binary {
	return &Binary{op: op, left: left, right: right}
}

func (b *Binary) Op() BinaryOp     { return b.op }
func (b *Binary) Left() Node       { return b.left }
func (b *Binary) Right() Node      { return b.right }
func (b *Binary) String() string   { return "(" + b.left.String() + " " + b.op.Symbol() + " " + b.right.String() + ")" }
func (b *Binary) nodeType() string { return "binary" }
func (b *Binary) Clone() Node {
	return &Binary{op: b.op, left: b.left.Clone(), right: b.right.Clone()}
}
func (b *Binary) Equal(other Node) bool {
	o, ok := other.(*Binary)
	return ok && o.op == b.op && b.left.Equal(o.left) && b.right.Equal(o.right)
}

// ============================================================
// Pattern - placeholder leaf, legal only inside rule templates
// ============================================================

type PatternKind int

const (
	// AnyPattern binds any subtree; repeated keys must bind equal subtrees.
	AnyPattern PatternKind = iota
	// VariablePattern is AnyPattern restricted to variables.
	VariablePattern
	// ConstantPattern is AnyPattern restricted to numbers.
	ConstantPattern
	// PositionPattern binds any subtree and always rebinds without a
	// consistency check.
	PositionPattern
)

var patternKindNames = [...]string{AnyPattern: "Any", VariablePattern: "Variable", ConstantPattern: "Constant", PositionPattern: "Position"}

func (k PatternKind) String() string {
	if k < 0 || int(k) >= len(patternKindNames) {
		return "PatternKind(" + strconv.Itoa(int(k)) + ")"
	}
	return patternKindNames[k]
}

type Pattern struct {
	key  int
	kind PatternKind
}

func PatternOf(key int, kind PatternKind) *Pattern { return &Pattern{key: key, kind: kind} }

func (p *Pattern) Key() int            { return p.key }
func (p *Pattern) Kind() PatternKind   { return p.kind }
func (p *Pattern) String() string      { return "pat" + strconv.Itoa(p.key) }
func (p *Pattern) LaTeX() string       { return `\square_{` + strconv.Itoa(p.key) + "}" }
func (p *Pattern) Clone() Node         { return &Pattern{key: p.key, kind: p.kind} }
func (p *Pattern) nodeType() string    { return "pattern" }
func (p *Pattern) Equal(other Node) bool {
	o, ok := other.(*Pattern)
	return ok && o.key == p.key && o.kind == p.kind
}

// ============================================================
// Constructors
// ============================================================

func AddOf(l, r Node) Node  { return BinaryOf(Add, l, r) }
func SubOf(l, r Node) Node  { return BinaryOf(Subtract, l, r) }
func MulOf(l, r Node) Node  { return BinaryOf(Multiply, l, r) }
func DivOf(l, r Node) Node  { return BinaryOf(Divide, l, r) }
func PowOf(b, e Node) Node  { return BinaryOf(Power, b, e) }
func LogOf(x, b Node) Node  { return BinaryOf(Log, x, b) }
func LnOf(x Node) Node      { return BinaryOf(Log, x, Num(math.E)) }
func RootOf(x, n Node) Node { return BinaryOf(Power, x, BinaryOf(Divide, Num(1), n)) }
func NegOf(x Node) Node     { return UnaryOf(Negate, x) }
func SinOf(x Node) Node     { return UnaryOf(Sin, x) }
func CosOf(x Node) Node     { return UnaryOf(Cos, x) }
func TanOf(x Node) Node     { return UnaryOf(Tan, x) }
func AbsOf(x Node) Node     { return UnaryOf(Abs, x) }

// ============================================================
// Top-level helpers
// ============================================================

func String(n Node) string   { return n.String() }
func LaTeX(n Node) string    { return n.LaTeX() }
func Equal(a, b Node) bool   { return a.Equal(b) }
func Clone(n Node) Node      { return n.Clone() }

// IsLeaf reports whether n has no children.
func IsLeaf(n Node) bool {
	switch n.(type) {
	case *Unary, *Binary:
		return false
	}
	return true
}

// unsupported panics for an operator or node kind without a handler.
// The operator sets are closed, so reaching it is a programming error.
func unsupported(what interface{}) {
	panic(fmt.Sprintf("symbolicmath: %v: %v", ErrUnsupportedOperator, what))
}
