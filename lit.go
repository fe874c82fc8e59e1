package cdcl

import "fmt"

// Var is a 0-indexed Boolean variable identity. Variables are created on
// demand as clauses reference them; the numeric value of a Var has no
// significance beyond indexing the solver's internal per-variable slices.
type Var int32

// Lit is a literal: a variable together with a polarity. It is encoded as
// 2*var for the positive occurrence and 2*var+1 for the negated occurrence,
// so that negation is a single XOR with 1 and ~l is adjacent to l once
// literals are sorted.
type Lit int32

// litUndef is used as a placeholder where no literal is yet known (e.g. the
// reserved first slot of a learnt clause being built, or "no literal
// examined yet" at the start of AddClause's duplicate scan).
const litUndef Lit = -1

// NewLit returns the literal for v, negated if neg is true.
func NewLit(v Var, neg bool) Lit {
	if neg {
		return Lit(2*v + 1)
	}
	return Lit(2 * v)
}

// intToLit converts a signed, 1-indexed DIMACS-style integer (as produced by
// the CNF parser) into a Lit. Variable k maps to Var(k-1); negative values
// negate the literal.
func intToLit(i int) Lit {
	if i < 0 {
		return NewLit(Var(-i-1), true)
	}
	return NewLit(Var(i-1), false)
}

// Not returns the negation of l.
func (l Lit) Not() Lit { return l ^ 1 }

// Sign reports whether l is a negated occurrence of its variable.
func (l Lit) Sign() bool { return l&1 == 1 }

// Var returns the variable l refers to.
func (l Lit) Var() Var { return Var(l >> 1) }

// index returns l's position in a watch-list or activity table indexed by
// literal code (2*var+sign).
func (l Lit) index() int { return int(l) }

// Int converts l back to the signed, 1-indexed integer form used at the
// library boundary (AddClause, Model serialization, DIMACS output).
func (l Lit) Int() int {
	n := int(l.Var()) + 1
	if l.Sign() {
		return -n
	}
	return n
}

// String implements fmt.Stringer, mostly for use in test failure output.
func (l Lit) String() string {
	if l == litUndef {
		return "undef"
	}
	if l.Sign() {
		return fmt.Sprintf("-x%d", l.Var())
	}
	return fmt.Sprintf("x%d", l.Var())
}
