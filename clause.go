package cdcl

import (
	"strings"
)

// Clause is an ordered, non-empty disjunction of literals. For clauses of
// length 2 or more, lits[0] and lits[1] are the two watched literals; the
// remainder may be permuted freely. A Clause's identity (its pointer) is
// what the trail's reason links and the locked-clause check compare
// against, so clauses are never copied once attached.
type Clause struct {
	lits []Lit
}

// newClauseFromLits wraps lits (which must already be normalized: no
// duplicates, no tautology, length >= 1) in a *Clause.
func newClauseFromLits(lits []Lit) *Clause {
	return &Clause{lits: append([]Lit(nil), lits...)}
}

// Len returns the number of literals in c.
func (c *Clause) Len() int { return len(c.lits) }

// Lits returns a copy of c's literals as signed integers, in the public
// AddClause/DIMACS convention. Used to reconstruct clauses for output and
// for tests that check clause contents.
func (c *Clause) Lits() []int {
	out := make([]int, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Int()
	}
	return out
}

// String implements fmt.Stringer for debugging and test failure messages.
func (c *Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}

// attach registers a clause of length >= 2 in the watch index, under the
// negation of each of its two watched literals (invariant 1: watchers[~C[0]]
// and watchers[~C[1]] contain C, and no other watch list does), and records
// it as an original or a learnt clause.
func (s *Solver) attach(c *Clause, learnt bool) {
	if c.Len() < 2 {
		panic("cdcl: attach of a clause with fewer than two literals")
	}
	s.watch(c.lits[0], c)
	s.watch(c.lits[1], c)
	if learnt {
		s.learnts = append(s.learnts, c)
	} else {
		s.clauses = append(s.clauses, c)
	}
}

// watch registers c in the watch list for ~watched (c is examined whenever
// ~watched becomes true, since that falsifies watched).
func (s *Solver) watch(watched Lit, c *Clause) {
	neg := watched.Not()
	s.watches[neg.index()] = append(s.watches[neg.index()], c)
}

// detach removes c from the watch lists of its two watched literals. It
// does not remove c from the originals/learnts slice; callers that delete a
// clause outright (simplify, reduceLearnts) rebuild that slice themselves.
func (s *Solver) detach(c *Clause) {
	s.unwatch(c.lits[0], c)
	if c.Len() > 1 {
		s.unwatch(c.lits[1], c)
	}
}

func (s *Solver) unwatch(watched Lit, c *Clause) {
	neg := watched.Not()
	ws := s.watches[neg.index()]
	for i, wc := range ws {
		if wc == c {
			last := len(ws) - 1
			ws[i] = ws[last]
			s.watches[neg.index()] = ws[:last]
			return
		}
	}
}

// clauseSatisfied reports whether some literal of c currently evaluates
// true.
func (s *Solver) clauseSatisfied(c *Clause) bool {
	for _, l := range c.lits {
		if s.value(l) == lTrue {
			return true
		}
	}
	return false
}

// locked reports whether c is currently acting as the propagation reason
// for its own first literal, making it unsafe for reduceLearnts to drop.
func (s *Solver) locked(c *Clause) bool {
	v := c.lits[0].Var()
	return s.assign[v].assigned() && s.assign[v].reason == c
}
