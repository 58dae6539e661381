package symbolicmath

import set "github.com/hashicorp/go-set/v3"

// ============================================================
// Rules
// ============================================================

// Rule rewrites trees matching Input into Output. Both are templates that
// may contain Pattern leaves; every key used by Output must be bound by
// Input.
type Rule struct {
	Input, Output Node
}

func NewRule(input, output Node) Rule { return Rule{Input: input, Output: output} }

func (r Rule) String() string { return r.Input.String() + " => " + r.Output.String() }

// Ruleset is an ordered list of rules. Earlier rules take priority.
type Ruleset []Rule

// DefaultMaxRewrites bounds the number of rule firings in one rewrite
// pass.
const DefaultMaxRewrites = 10000

// Apply matches n against the rule input and, on success, returns the
// instantiated output. Substituted subtrees and rebuilt template children
// are rewritten with rs, so one firing can cascade.
func (r Rule) Apply(n Node, rs Ruleset) (Node, bool) {
	return newRewriter(rs, DefaultMaxRewrites).apply(r, n)
}

// ApplyRules rewrites n with rs until no rule applies. Children are
// rewritten before their parent. At each node the first matching rule
// replaces it and the scan restarts from the first rule on the
// replacement. Rewriting stops at a tree whose low-level hash was already
// produced in the current chain, or that is being rewritten further up the
// call stack, so cyclic rule pairs terminate.
func ApplyRules(n Node, rs Ruleset) Node {
	return newRewriter(rs, DefaultMaxRewrites).rewrite(n)
}

// ============================================================
// Rewriter
// ============================================================

type rewriter struct {
	rules Ruleset
	// active holds the low-level hashes of trees currently being
	// rewritten, including earlier members of each rewrite chain.
	active *set.Set[string]
	budget int
}

func newRewriter(rs Ruleset, maxRewrites int) *rewriter {
	if maxRewrites <= 0 {
		maxRewrites = DefaultMaxRewrites
	}
	return &rewriter{rules: rs, active: set.New[string](16), budget: maxRewrites}
}

func (w *rewriter) rewrite(n Node) Node {
	switch v := n.(type) {
	case *Unary:
		if !IsLeaf(v.arg) {
			n = UnaryOf(v.op, w.rewrite(v.arg))
		}
	case *Binary:
		l, r := v.left, v.right
		if !IsLeaf(l) {
			l = w.rewrite(l)
		}
		if !IsLeaf(r) {
			r = w.rewrite(r)
		}
		n = BinaryOf(v.op, l, r)
	}
	return w.rewriteNode(n)
}

func (w *rewriter) rewriteNode(n Node) Node {
	var chain []string
	defer func() {
		for _, h := range chain {
			w.active.Remove(h)
		}
	}()

	cur := n
	for w.budget > 0 {
		h := Hash(cur, HashLow)
		if !w.active.Insert(h) {
			break
		}
		chain = append(chain, h)

		r, b, ok := w.firstMatch(cur)
		if !ok {
			break
		}
		// Charge the firing before instantiating, so nested rewrites of
		// the output share what is left.
		w.budget--
		cur = w.instantiate(r.Output, b)
	}
	return cur
}

func (w *rewriter) firstMatch(n Node) (Rule, Bindings, bool) {
	for _, r := range w.rules {
		b := Bindings{}
		if Match(n, r.Input, b) {
			return r, b, true
		}
	}
	return Rule{}, nil, false
}

func (w *rewriter) apply(r Rule, n Node) (Node, bool) {
	b := Bindings{}
	if !Match(n, r.Input, b) {
		return nil, false
	}
	return w.instantiate(r.Output, b), true
}

// instantiate builds the output template t with the bound subtrees.
func (w *rewriter) instantiate(t Node, b Bindings) Node {
	switch v := t.(type) {
	case *Pattern:
		bound, ok := b[v.key]
		if !ok {
			invariant("pattern key %d is not bound", v.key)
		}
		return w.rewrite(bound)
	case *Unary:
		return UnaryOf(v.op, w.rewrite(w.instantiate(v.arg, b)))
	case *Binary:
		return BinaryOf(v.op, w.rewrite(w.instantiate(v.left, b)), w.rewrite(w.instantiate(v.right, b)))
	}
	return t.Clone()
}
