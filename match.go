package symbolicmath

// ============================================================
// Pattern matcher
// ============================================================

// Bindings maps pattern keys to the subtrees they matched.
type Bindings map[int]Node

// MatchPattern matches n against pattern with fresh bindings. It returns
// the bindings and true on success.
func MatchPattern(pattern, n Node) (Bindings, bool) {
	b := Bindings{}
	if !Match(n, pattern, b) {
		return nil, false
	}
	return b, true
}

// Match reports whether n structurally matches pattern, recording pattern
// bindings in b. Matching is left to right without backtracking: a
// repeated Any key that disagrees with its first binding fails the whole
// match. b may be partially filled after a failed match.
func Match(n, pattern Node, b Bindings) bool {
	if p, ok := pattern.(*Pattern); ok {
		return bindPattern(n, p, b)
	}
	switch v := n.(type) {
	case *Binary:
		pb, ok := pattern.(*Binary)
		return ok && pb.op == v.op && Match(v.left, pb.left, b) && Match(v.right, pb.right, b)
	case *Unary:
		switch pv := pattern.(type) {
		case *Unary:
			return pv.op == v.op && Match(v.arg, pv.arg, b)
		case *Number:
			// -(c) matches the literal -c
			if v.op == Negate && pv.value < 0 {
				return Match(v, NegOf(Num(-pv.value)), b)
			}
		}
		return false
	case *Variable:
		return pattern.Equal(v)
	case *Number:
		switch pv := pattern.(type) {
		case *Number:
			return pv.Equal(v)
		case *Unary:
			// the literal -c matches -(c)
			if pv.op == Negate && v.value < 0 {
				return Match(NegOf(Num(-v.value)), pv, b)
			}
		}
		return false
	}
	return false
}

func bindPattern(n Node, p *Pattern, b Bindings) bool {
	switch p.kind {
	case PositionPattern:
		b[p.key] = n
		return true
	case AnyPattern:
	case VariablePattern:
		if _, ok := n.(*Variable); !ok {
			return false
		}
	case ConstantPattern:
		if _, ok := n.(*Number); !ok {
			return false
		}
	default:
		unsupported(p.kind)
	}
	if prev, ok := b[p.key]; ok {
		return prev.Equal(n)
	}
	b[p.key] = n
	return true
}
