package cdcl

import "testing"

func TestAddClauseNormalizesDuplicatesAndTautologies(t *testing.T) {
	s := NewSolver(0)
	if err := s.AddClause([]int{1, 2, 1, -1, 3}); err != nil {
		t.Fatal(err)
	}
	// 1, -1 makes this a tautology: it must be discarded entirely, leaving
	// no clause and no forced assignment.
	if len(s.clauses) != 0 {
		t.Fatalf("len(clauses) = %d, want 0 (tautology discarded)", len(s.clauses))
	}
	// Every referenced variable is still created, even though the clause
	// built from them was discarded.
	if got := s.NVars(); got != 3 {
		t.Fatalf("NVars() = %d, want 3", got)
	}
}

func TestAddClauseDropsDuplicateLiterals(t *testing.T) {
	s := NewSolver(0)
	if err := s.AddClause([]int{1, 2, 1, 2}); err != nil {
		t.Fatal(err)
	}
	if len(s.clauses) != 1 {
		t.Fatalf("len(clauses) = %d, want 1", len(s.clauses))
	}
	if got := s.clauses[0].Len(); got != 2 {
		t.Fatalf("clause length = %d, want 2 after deduplication", got)
	}
	want := []int{1, 2}
	got := s.clauses[0].Lits()
	if len(got) != len(want) {
		t.Fatalf("Lits() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lits() = %v, want %v", got, want)
		}
	}
}

func TestAddClauseUnitBecomesFact(t *testing.T) {
	s := NewSolver(0)
	if err := s.AddClause([]int{5}); err != nil {
		t.Fatal(err)
	}
	if len(s.clauses) != 0 {
		t.Fatalf("len(clauses) = %d, want 0 (unit clause enqueued directly)", len(s.clauses))
	}
	if s.value(NewLit(4, false)) != lTrue {
		t.Fatal("unit clause {5} was not enqueued as a level-0 fact")
	}
	if got := s.NVars(); got != 5 {
		t.Fatalf("NVars() = %d, want 5", got)
	}
}

func TestAddClauseContradictingUnitsGoesUnsat(t *testing.T) {
	s := NewSolver(0)
	if err := s.AddClause([]int{1}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddClause([]int{-1}); err != nil {
		t.Fatal(err)
	}
	if s.status != StatusUnsat {
		t.Fatalf("status = %v, want Unsat after adding a unit clause and its negation", s.status)
	}
}

func TestAddClauseFiltersFalseLevelZeroLiterals(t *testing.T) {
	s := NewSolver(0)
	must(t, s.AddClause([]int{1}))     // fact: x0 true
	must(t, s.AddClause([]int{-1, 2})) // simplifies to the fact x1 true
	if s.value(NewLit(1, false)) != lTrue {
		t.Fatal("clause {-1, 2} with x0 already true should simplify to the fact x1")
	}
}

func TestAddClauseAtNonzeroLevelReturnsError(t *testing.T) {
	s := NewSolver(2)
	s.newDecision(NewLit(0, false))
	if err := s.AddClause([]int{2}); err == nil {
		t.Fatal("expected an error adding a clause while not at decision level 0")
	}
}

func TestAddClauseZeroLiteralPanics(t *testing.T) {
	s := NewSolver(1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected AddClause with a 0 literal to panic")
		}
	}()
	s.AddClause([]int{1, 0})
}

func TestSimplifyPurgesSatisfiedClauses(t *testing.T) {
	s := NewSolver(2)
	must(t, s.AddClause([]int{1, 2}))
	must(t, s.AddClause([]int{1, -2}))
	s.enqueue(NewLit(0, false), nil) // x0 true at level 0 satisfies both
	s.simplify()
	if len(s.clauses) != 0 {
		t.Fatalf("len(clauses) after simplify = %d, want 0", len(s.clauses))
	}
}

func TestReduceLearntsKeepsLockedAndSmallClauses(t *testing.T) {
	s := NewSolver(6)
	var learnts []*Clause
	for i := 0; i < 6; i++ {
		c := newClauseFromLits([]Lit{NewLit(Var(i), false), NewLit(Var((i+1)%6), false), NewLit(Var((i+2)%6), true)})
		s.attach(c, true)
		learnts = append(learnts, c)
	}
	// Lock the first learnt clause by making it var 0's propagation reason.
	s.enqueue(NewLit(0, false), learnts[0])

	s.reduceLearnts()

	found := false
	for _, c := range s.learnts {
		if c == learnts[0] {
			found = true
		}
	}
	if !found {
		t.Fatal("reduceLearnts discarded a locked clause")
	}
	if len(s.learnts) > len(learnts) {
		t.Fatalf("reduceLearnts grew the learnt set: %d > %d", len(s.learnts), len(learnts))
	}
}
