package solver

// trail.go implements the assignment trail: chronological enqueue order,
// decision-level bookkeeping, and the weighted-deficit invariant
// (totalWeight, §4.2) that makes this engine more than a plain CDCL core.
// Grounded on original_source/Solver.cc's uncheckedEnqueue/cancelUntil.

// newDecisionLevel opens a new decision level by recording the current
// trail length as its boundary.
func (w *Worker) newDecisionLevel() {
	w.trailLim = append(w.trailLim, len(w.trail))
}

// uncheckedEnqueue assigns lit true without checking it against the current
// assignment (the caller must already know it is safe to do so), recording
// from as its reason clause (CRefUndef for a decision or a top-level unit).
// If the assignment falsifies a weighted variable, its weight is subtracted
// from totalWeight here; cancelUntil adds it back.
func (w *Worker) uncheckedEnqueue(lit Lit, from CRef) {
	v := lit.Var()
	val := lTrue
	if !lit.IsPositive() {
		val = lFalse
	}
	w.assign[v] = val
	w.level[v] = w.decisionLevel()
	w.reason[v] = from
	w.trail = append(w.trail, lit)
	if val == lFalse && w.huWei[v] != 0 {
		w.totalWeight -= w.huWei[v]
	}
}

// cancelUntil undoes every assignment made at a decision level deeper than
// level, restoring the decision heap and phase-saved polarities as it goes.
func (w *Worker) cancelUntil(level int) {
	if w.decisionLevel() <= level {
		return
	}
	for c := len(w.trail) - 1; c >= w.trailLim[level]; c-- {
		v := w.trail[c].Var()
		if w.assign[v] == lFalse && w.huWei[v] != 0 {
			w.totalWeight += w.huWei[v]
		}
		w.assign[v] = lUndef
		if w.Cfg.PhaseSaving > 1 || (w.Cfg.PhaseSaving == 1 && c > w.trailLim[len(w.trailLim)-1]) {
			w.polarity[v] = w.trail[c].IsPositive()
		}
		w.insertVarOrder(v)
	}
	w.qhead = w.trailLim[level]
	w.trail = w.trail[:w.trailLim[level]]
	w.trailLim = w.trailLim[:level]
}

// cancelAll rewinds to decision level 0, the state the worker must be in
// before it can accept a brand new guiding path (§4.6 UNDIVIDED transition).
func (w *Worker) cancelAll() {
	w.cancelUntil(0)
}

// insertVarOrder reinserts v into the decision heap if it is a decision
// variable and not already present.
func (w *Worker) insertVarOrder(v Var) {
	if !w.decisionVar[v] {
		return
	}
	if !w.heap.contains(int(v)) {
		w.heap.insert(int(v))
	}
}

// locked reports whether cr is the reason some assigned variable currently
// relies on, meaning it must survive garbage collection and reduceLearnts.
func (w *Worker) locked(cr CRef) bool {
	c := w.arena.get(cr)
	if c.Len() == 0 {
		return false
	}
	lit0 := c.Get(0)
	return w.value(lit0) == lTrue && w.reason[lit0.Var()] == cr
}
