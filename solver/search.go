package solver

// search.go is the DIVIDED/UNDIVIDED search driver described in §4.6: a
// restart-paced outer loop around propagate that emits a model every time
// the decision heap empties under the current guiding path, and advances to
// the next guiding path once the current one is exhausted.
//
// Unlike classical CDCL, a conflict under DIVIDED does not backjump to the
// learnt clause's asserting level: it flips the most recent decision and
// continues searching the same branch exhaustively (a chronological
// one-level backtrack). This mirrors original_source/Solver.cc's search()
// loop; see DESIGN.md open question #1 for why that behavior is kept
// rather than "fixed" to a non-chronological jump.

// Solve runs the worker to completion, calling onModel for every itemset
// found, and returns the final status.
func (w *Worker) Solve(onModel func(items []int)) Status {
	w.onModel = onModel
	curRestart := 0
	for {
		budget := w.restartBudget(curRestart)
		status := w.searchWindow(budget)
		curRestart++
		w.Stats.NbRestarts++
		if status != Indet {
			return status
		}
		if len(w.learnts) > w.maxClauses {
			w.reduceLearnts()
		}
		w.importFromSiblings()
	}
}

// searchWindow runs until either nof_conflicts conflicts have been spent in
// this window (returns Indet to let the caller restart), or the problem is
// fully decided (Sat only ever returned at top level from the caller: a
// model discovered at level 0 still means "continue enumerating", so this
// function returns Unsat only once the whole item list is exhausted).
func (w *Worker) searchWindow(nofConflicts int) Status {
	conflictC := 0
	for {
		if !w.ok {
			return Unsat
		}
		if !w.divided {
			if !w.advanceGuidingPath() {
				return Unsat
			}
			continue
		}

		confl := w.propagate()
		if confl == CRefUndef && w.weightDeficit() {
			confl = w.lastEncClause()
		}

		if confl != CRefUndef {
			w.Stats.NbConflicts++
			conflictC++
			w.decayVarActivity()
			w.decayClauseActivity()

			if w.decisionLevel() == 0 {
				w.clearGuidingPathClauses()
				w.divided = false
				continue
			}

			// Chronological one-level flip (§4.6 step 2), not a classical
			// non-chronological jump: analyze() is implemented (§4.3) but,
			// matching original_source/Solver.cc's search(), is never called
			// from this path. See DESIGN.md open question #1.
			w.flipLastDecision()
			continue
		}

		// No conflict: the window's conflict budget may still force a restart.
		if nofConflicts >= 0 && conflictC >= nofConflicts {
			w.cancelUntil(0)
			return Indet
		}

		lit := w.pickBranchLit()
		if lit == LitUndef {
			w.emitModel()
			if w.decisionLevel() == 0 {
				w.clearGuidingPathClauses()
				w.divided = false
				continue
			}
			w.flipLastDecision()
			continue
		}
		w.newDecisionLevel()
		w.uncheckedEnqueue(lit, CRefUndef)
	}
}

// lastEncClause returns a clause to blame for a weight-deficit conflict that
// propagate() itself didn't already attach to one (the no-more-unit-to-
// propagate-but-still-in-deficit case from §4.6 step 4). Any clause that
// currently has a falsified reifier among its encoded clauses works as an
// analysis seed, since every encoded clause mentioning that reifier
// resolves back to the same falsified ancestor.
func (w *Worker) lastEncClause() CRef {
	if len(w.encClauses) == 0 {
		return CRefUndef
	}
	return w.encClauses[len(w.encClauses)-1]
}

// flipLastDecision implements the chronological one-level backtrack: undo
// the most recent decision and enqueue its negation at the same level,
// without adding any clause back (§4.6 step 2 and step 6).
func (w *Worker) flipLastDecision() {
	level := w.decisionLevel()
	lastIdx := w.trailLim[level-1]
	decisionLit := w.trail[lastIdx]
	w.cancelUntil(level - 1)
	w.newDecisionLevel()
	w.uncheckedEnqueue(decisionLit.Negation(), CRefUndef)
}

// pickBranchLit pops the decision heap until it finds an undefined decision
// variable. Phase is forced positive unconditionally (§4.4: enumeration
// favors including items), ignoring saved polarity; original_source/Solver.cc's
// pickBranchLit hardcodes mkLit(next, false) the same way.
func (w *Worker) pickBranchLit() Lit {
	var next Var = -1
	for !w.heap.empty() {
		v := Var(w.heap.removeMin())
		if w.assign[v] == lUndef && w.decisionVar[v] {
			next = v
			break
		}
	}
	if next < 0 {
		return LitUndef
	}
	return next.SignedLit(false)
}

// advanceGuidingPath strides guidingIndex by WorkerCount until encoding
// succeeds or the item list is exhausted.
func (w *Worker) advanceGuidingPath() bool {
	items := w.DB.Items
	for w.guidingIndex < len(items) {
		k := w.guidingIndex + 1
		w.guidingIndex += w.WorkerCount
		w.Stats.NbGuidingPaths++
		if w.encodeGuidingPath(items, k) {
			return true
		}
	}
	return false
}

// emitModel reports the itemset of every item variable currently true.
func (w *Worker) emitModel() {
	w.Stats.NbModels++
	if w.onModel != nil {
		w.onModel(w.currentItemset())
	}
}

func (w *Worker) exportUnit(lit Lit) {
	w.Exp.ExportUnit(w.ID, lit)
}

func (w *Worker) exportClause(lits []Lit) {
	cp := make([]Lit, len(lits))
	copy(cp, lits)
	w.Exp.ExportClause(w.ID, cp)
}

// importFromSiblings pulls in whatever units and short clauses arrived
// since the last restart, per the non-interference invariant (§5): imports
// are heuristic-only, applied only at level 0, and never required for
// soundness.
func (w *Worker) importFromSiblings() {
	if w.decisionLevel() != 0 {
		return
	}
	for _, lit := range w.Exp.DrainUnits(w.ID) {
		if w.value(lit) == lUndef {
			w.uncheckedEnqueue(lit, CRefUndef)
			w.Stats.NbImportedUnits++
		}
	}
	for _, lits := range w.Exp.DrainClauses(w.ID) {
		if len(lits) < 2 {
			continue
		}
		cr := w.arena.alloc(lits, true)
		c := w.arena.get(cr)
		w.watches.watch(cr, c)
		w.learnts = append(w.learnts, cr)
		w.Stats.NbImportedClauses++
	}
	if w.propagate() != CRefUndef {
		w.ok = false
	}
}
