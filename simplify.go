package symbolicmath

// ============================================================
// Staged simplification
// ============================================================

// Simplifier configures a staged simplification. The zero value is ready
// to use: Level 1, CommonRules and DefaultMaxRewrites.
type Simplifier struct {
	// Level is the number of sort/fold/rewrite stages. Values <= 0 mean 1.
	Level int
	// Rules replaces the common ruleset when non-nil.
	Rules Ruleset
	// MaxRewrites bounds rule firings per rewrite pass. Values <= 0 mean
	// DefaultMaxRewrites.
	MaxRewrites int
	// MaxRounds bounds how often the whole schedule is repeated while the
	// tree keeps changing. Values <= 0 mean DefaultMaxRounds.
	MaxRounds int
}

// DefaultMaxRounds is the schedule repetition bound used when a Simplifier
// does not set one.
const DefaultMaxRounds = 16

// Simplify runs the staged schedule on n until the result is a fixed
// point of the schedule or MaxRounds is reached. A fixed point is
// returned unchanged by a second Simplify with the same settings.
func (s Simplifier) Simplify(n Node) Node {
	level := s.Level
	if level <= 0 {
		level = 1
	}
	rs := s.Rules
	if rs == nil {
		rs = CommonRules()
	}
	rounds := s.MaxRounds
	if rounds <= 0 {
		rounds = DefaultMaxRounds
	}

	prev := Hash(n, HashLow)
	for i := 0; i < rounds; i++ {
		n = s.pass(n, level, rs)
		h := Hash(n, HashLow)
		if h == prev {
			break
		}
		prev = h
	}
	return n
}

// pass runs the schedule once. Stage 0 regroups at HashHigh, stage 2 at
// HashMedium and stage 4 at HashLow; every stage then folds constants and
// applies the rules. A final fold closes the pass.
func (s Simplifier) pass(n Node, level int, rs Ruleset) Node {
	n = Eval(n)
	for i := 0; i < level; i++ {
		switch i {
		case 0:
			n = Sort(n, HashHigh)
		case 2:
			n = Sort(n, HashMedium)
		case 4:
			n = Sort(n, HashLow)
		}
		n = Eval(n)
		n = newRewriter(rs, s.MaxRewrites).rewrite(n)
	}
	return Eval(n)
}

// Simplify simplifies n with one stage and the common rules.
func Simplify(n Node) Node { return SimplifyLevel(n, 1) }

// SimplifyLevel simplifies n with the given number of stages.
// level <= 0 defaults to 1.
func SimplifyLevel(n Node, level int) Node {
	return Simplifier{Level: level}.Simplify(n)
}
