package cdcl

import (
	"fmt"
	"sort"
)

// AddClause normalizes and ingests a clause given as signed, 1-indexed
// integers (the same convention the DIMACS parser and the public Solve
// boundary use throughout: literal k refers to Var(k-1), negative values
// negate it). Variables referenced for the first time are created.
//
// AddClause may only be called while the solver is at decision level 0 (i.e.
// before Solve has been called, or — in principle — between top-level
// simplification passes); calling it mid-search returns an error.
// A zero literal is likewise a contract violation, since callers are
// expected to have already split clauses on the DIMACS terminator.
//
// Normalization: literals are sorted and deduplicated; a clause containing
// both a literal and its negation (a tautology) is silently discarded, as
// is a clause already satisfied by a current level-0 fact. Literals already
// false at level 0 are dropped from the clause. If the result is empty, the
// solver becomes permanently Unsat; if it is a single literal, it is
// enqueued directly as a level-0 fact instead of being stored.
func (s *Solver) AddClause(raw []int) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("cdcl: AddClause called at decision level %d, want 0", s.decisionLevel())
	}
	if s.status == StatusUnsat {
		return nil
	}

	lits := make([]Lit, len(raw))
	for i, n := range raw {
		if n == 0 {
			panic("cdcl: AddClause: literal 0 is not a valid variable reference")
		}
		v := Var(absInt(n) - 1)
		s.ensureVar(v)
		lits[i] = intToLit(n)
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })

	kept := lits[:0]
	var last Lit = litUndef
	for _, p := range lits {
		switch {
		case p == last:
			continue // duplicate literal
		case p == last.Not() && last != litUndef:
			return nil // tautology: p ∨ ~p is always true, discard
		case s.value(p) == lTrue:
			return nil // already satisfied at level 0, discard
		case s.value(p) == lFalse:
			last = p
			continue // false at level 0, drop the literal
		}
		kept = append(kept, p)
		last = p
	}

	switch len(kept) {
	case 0:
		s.status = StatusUnsat
	case 1:
		s.enqueue(kept[0], nil)
	default:
		s.attach(newClauseFromLits(kept), false)
	}
	return nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// simplify drops every original and learnt clause already satisfied by the
// current level-0 assignment, detaching it from the watch index. It is only
// meaningful — and only called — at decision level 0.
func (s *Solver) simplify() {
	s.clauses = s.purgeSatisfied(s.clauses)
	s.learnts = s.purgeSatisfied(s.learnts)
}

func (s *Solver) purgeSatisfied(list []*Clause) []*Clause {
	kept := list[:0]
	for _, c := range list {
		if s.clauseSatisfied(c) {
			s.detach(c)
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// reduceLearnts halves the learnt-clause database, keeping the smaller half
// (by literal count) unconditionally, along with any larger clause that is
// either binary/unit-sized or currently locked as a propagation reason.
func (s *Solver) reduceLearnts() {
	sort.Slice(s.learnts, func(i, j int) bool {
		return s.learnts[i].Len() < s.learnts[j].Len()
	})
	half := len(s.learnts) / 2

	kept := s.learnts[:0]
	for i, c := range s.learnts {
		if i < half || c.Len() <= 2 || s.locked(c) {
			kept = append(kept, c)
			continue
		}
		s.detach(c)
	}
	s.learnts = kept
}
