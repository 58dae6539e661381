package symbolicmath

import (
	"cmp"

	set "github.com/hashicorp/go-set/v3"
)

// ============================================================
// Free Symbols
// ============================================================

// FreeSymbols returns the distinct variable names in n, sorted.
func FreeSymbols(n Node) []string {
	names := set.NewTreeSet[string](cmp.Compare[string])
	collectSymbols(n, names)
	return names.Slice()
}

func collectSymbols(n Node, out *set.TreeSet[string]) {
	switch v := n.(type) {
	case *Variable:
		out.Insert(v.name)
	case *Unary:
		collectSymbols(v.arg, out)
	case *Binary:
		collectSymbols(v.left, out)
		collectSymbols(v.right, out)
	}
}
