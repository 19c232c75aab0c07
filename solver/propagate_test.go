package solver

import "testing"

// newBareWorker builds the minimum Worker state propagate/trail need,
// without going through NewWorker (which additionally wants a
// *txndb.Database for guiding-path bookkeeping this test doesn't exercise).
func newBareWorker(nbVars int) *Worker {
	w := &Worker{
		assign:      make([]lbool, nbVars),
		level:       make([]int, nbVars),
		reason:      make([]CRef, nbVars),
		polarity:    make([]bool, nbVars),
		decisionVar: make([]bool, nbVars),
		huWei:       make([]int, nbVars),
		minSupp:     0,
	}
	for i := range w.reason {
		w.reason[i] = CRefUndef
	}
	w.watches = newWatchIndex(nbVars)
	return w
}

// addClauseForTest attaches a clause of 2+ literals to the watch index.
// Unit clauses are not watchable under the two-watched-literal scheme (that
// is exactly why the search driver enqueues units directly rather than
// storing them as clauses at all); enqueue those with uncheckedEnqueue.
func (w *Worker) addClauseForTest(lits []Lit) CRef {
	cr := w.arena.alloc(lits, false)
	w.watches.watch(cr, w.arena.get(cr))
	return cr
}

func TestPropagateUnitChain(t *testing.T) {
	w := newBareWorker(3)
	// (-x0 v x1) ; (-x1 v x2), with x0 asserted as a decision-level-0 unit.
	w.addClauseForTest([]Lit{Var(0).Lit().Negation(), Var(1).Lit()})
	w.addClauseForTest([]Lit{Var(1).Lit().Negation(), Var(2).Lit()})

	w.uncheckedEnqueue(Var(0).Lit(), CRefUndef)
	if confl := w.propagate(); confl != CRefUndef {
		t.Fatalf("expected no conflict, got clause %d", confl)
	}
	for v := 0; v < 3; v++ {
		if w.assign[v] != lTrue {
			t.Errorf("variable %d should have propagated true, got %v", v, w.assign[v])
		}
	}
}

func TestPropagateDetectsConflict(t *testing.T) {
	w := newBareWorker(3)
	// (-x0 v x1) ; (-x0 v -x1), with x0 asserted: forces x1 true then
	// immediately falsified by the second clause.
	w.addClauseForTest([]Lit{Var(0).Lit().Negation(), Var(1).Lit()})
	cr2 := w.addClauseForTest([]Lit{Var(0).Lit().Negation(), Var(1).Lit().Negation()})

	w.uncheckedEnqueue(Var(0).Lit(), CRefUndef)
	confl := w.propagate()
	if confl == CRefUndef {
		t.Fatalf("expected a conflict")
	}
	if confl != cr2 {
		t.Errorf("expected the conflicting clause to be the one falsified by x1, got %d want %d", confl, cr2)
	}
}

func TestWeightDeficitTriggersConflict(t *testing.T) {
	w := newBareWorker(2)
	w.minSupp = 10
	w.huWei[1] = 4
	w.totalWeight = 4 // already under min_supp before any propagation

	// (-x0 v x1) becomes unit once x0 is asserted; with totalWeight already
	// under min_supp, propagate() must report that clause as a conflict
	// rather than enqueue x1 (§4.2 step 5), and must not clear the deficit.
	cr := w.addClauseForTest([]Lit{Var(0).Lit().Negation(), Var(1).Lit()})
	w.uncheckedEnqueue(Var(0).Lit(), CRefUndef)
	if confl := w.propagate(); confl != cr {
		t.Fatalf("expected the weight deficit to report clause %d as a conflict, got %d", cr, confl)
	}
	if !w.weightDeficit() {
		t.Fatalf("expected weightDeficit() to remain true")
	}
}

func TestCancelUntilRestoresWeight(t *testing.T) {
	w := newBareWorker(2)
	w.minSupp = 0
	w.huWei[0] = 7
	w.totalWeight = 7

	w.newDecisionLevel()
	w.uncheckedEnqueue(Var(0).Lit().Negation(), CRefUndef) // falsifies var 0
	if w.totalWeight != 0 {
		t.Fatalf("falsifying a weighted var should subtract its weight, got totalWeight=%d", w.totalWeight)
	}
	w.cancelUntil(0)
	if w.totalWeight != 7 {
		t.Fatalf("backtracking past the falsifying assignment should restore the weight, got %d", w.totalWeight)
	}
}
