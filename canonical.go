package symbolicmath

import "sort"

// ============================================================
// Linear children - flattened associative chains
// ============================================================

type linearTag int

const (
	keep linearTag = iota
	inverted
)

func (t linearTag) flip() linearTag {
	if t == keep {
		return inverted
	}
	return keep
}

// linearChild is one operand of a flattened chain. An inverted child was
// reached through the inverse operator (subtracted or divided).
type linearChild struct {
	node Node
	tag  linearTag
}

// linearChildren flattens the chain of op/inv applications rooted at n.
// For sums (Add/Subtract) a Negate flips the tags of its contents; for
// products (Multiply/Divide) it contributes a -1 factor.
func linearChildren(n Node, op, inv BinaryOp) []linearChild {
	switch v := n.(type) {
	case *Binary:
		if v.op != op && v.op != inv {
			break
		}
		out := linearChildren(v.left, op, inv)
		right := linearChildren(v.right, op, inv)
		if v.op == inv {
			right = invertAll(right)
		}
		return append(out, right...)
	case *Unary:
		if v.op != Negate {
			break
		}
		switch {
		case inv == Subtract:
			return invertAll(linearChildren(v.arg, op, inv))
		case op == Multiply:
			return append([]linearChild{{node: Num(-1), tag: keep}}, linearChildren(v.arg, op, inv)...)
		}
	}
	return []linearChild{{node: n, tag: keep}}
}

func invertAll(children []linearChild) []linearChild {
	for i := range children {
		children[i].tag = children[i].tag.flip()
	}
	return children
}

// ============================================================
// Sort - canonical regrouping
// ============================================================

// Sort canonicalizes the associative chains of n. Children are sorted
// first; each Add/Subtract or Multiply/Divide chain is flattened, its
// operands grouped by Hash at the given level, and the groups rebuilt in
// fingerprint order. Operands within a group keep their relative order.
// The input is not modified.
func Sort(n Node, level HashLevel) Node {
	switch v := n.(type) {
	case *Unary:
		return UnaryOf(v.op, Sort(v.arg, level))
	case *Binary:
		b := BinaryOf(v.op, Sort(v.left, level), Sort(v.right, level))
		switch b.op {
		case Add, Subtract:
			return regroup(b, Add, Subtract, level)
		case Multiply, Divide:
			return regroup(b, Multiply, Divide, level)
		}
		return b
	}
	return n.Clone()
}

func regroup(n Node, op, inv BinaryOp, level HashLevel) Node {
	children := linearChildren(n, op, inv)

	groups := map[string][]linearChild{}
	var keys []string
	for _, c := range children {
		h := Hash(c.node, level)
		if _, seen := groups[h]; !seen {
			keys = append(keys, h)
		}
		groups[h] = append(groups[h], c)
	}
	sort.Strings(keys)

	hung := make([]linearChild, len(keys))
	for i, k := range keys {
		node, tag := multiHang(groups[k], op, inv)
		hung[i] = linearChild{node: node, tag: tag}
	}
	node, tag := multiHang(hung, op, inv)
	return closeInverted(node, tag, op)
}

// multiHang folds children into a right-leaning chain. The returned tag
// is inverted when the whole chain is subtracted (or divided) as a unit:
// -a - b is returned as (a + b) tagged inverted.
func multiHang(children []linearChild, op, inv BinaryOp) (Node, linearTag) {
	if len(children) == 0 {
		invariant("multiHang of an empty chain")
	}
	head := children[0]
	if len(children) == 1 {
		return head.node, head.tag
	}
	rest, restTag := multiHang(children[1:], op, inv)
	switch {
	case head.tag == keep && restTag == keep:
		return BinaryOf(op, head.node, rest), keep
	case head.tag == keep:
		return BinaryOf(inv, head.node, rest), keep
	case restTag == keep:
		return BinaryOf(inv, rest, head.node), keep
	}
	return BinaryOf(op, head.node, rest), inverted
}

// closeInverted turns a chain tagged inverted back into a standalone
// node: -(chain) for sums, 1 / chain for products.
func closeInverted(n Node, tag linearTag, op BinaryOp) Node {
	if tag == keep {
		return n
	}
	if op == Multiply {
		return DivOf(Num(1), n)
	}
	return NegOf(n)
}
