package symbolicmath

import (
	"bytes"
	"strconv"
)

// HashLevel selects how much of a tree Hash encodes.
type HashLevel int

const (
	// HashHigh ignores numeric literals, grouping terms that differ only
	// in their coefficients.
	HashHigh HashLevel = iota
	// HashMedium is currently identical to HashHigh. It is the slot for the
	// intermediate stage of the simplification schedule.
	HashMedium
	// HashLow encodes every operator, literal and identifier in order. It
	// is also the fingerprint used by the rewrite engine's cycle guard.
	HashLow
)

func (l HashLevel) String() string {
	switch l {
	case HashHigh:
		return "high"
	case HashMedium:
		return "medium"
	case HashLow:
		return "low"
	}
	return "HashLevel(" + strconv.Itoa(int(l)) + ")"
}

// Hash returns the canonical fingerprint of n at the given level.
// Identifiers are length-prefixed, so at HashLow two pattern-free trees
// share a fingerprint only when they are equal.
func Hash(n Node, level HashLevel) string {
	var buf bytes.Buffer
	writeHash(&buf, n, level)
	return buf.String()
}

// writeHash appends the fingerprint of n to buf in a single walk. A '+'
// separates the two sides of a Binary only when both wrote something.
func writeHash(buf *bytes.Buffer, n Node, level HashLevel) {
	switch v := n.(type) {
	case *Number:
		if level == HashLow {
			buf.WriteString(formatFloat(v.value))
		}
	case *Variable:
		buf.WriteString("var")
		buf.WriteString(strconv.Itoa(len(v.name)))
		buf.WriteByte(':')
		buf.WriteString(v.name)
	case *Unary:
		buf.WriteString(v.op.String())
		if level == HashLow {
			buf.WriteByte('+')
			writeHash(buf, v.arg, level)
		}
	case *Binary:
		if level == HashLow {
			buf.WriteString(v.op.String())
			buf.WriteByte('+')
		}
		start := buf.Len()
		writeHash(buf, v.left, level)
		if buf.Len() == start {
			writeHash(buf, v.right, level)
			return
		}
		buf.WriteByte('+')
		mark := buf.Len()
		writeHash(buf, v.right, level)
		if buf.Len() == mark {
			buf.Truncate(mark - 1)
		}
	case *Pattern:
		buf.WriteString(v.kind.String())
		if level != HashLow {
			buf.WriteString(strconv.Itoa(v.key))
		}
	default:
		unsupported(n)
	}
}
