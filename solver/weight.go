package solver

// weight.go tracks the weighted-deficit invariant described in the
// specification's §4.2: totalWeight is the sum of hu_wei over every
// reifier variable not yet falsified, and propagation raises a conflict as
// soon as totalWeight drops under the guiding path's minimum support. The
// invariant itself is maintained incrementally inside uncheckedEnqueue and
// cancelUntil (trail.go); this file only seeds and clears it.

// resetWeights clears every huWei entry and the running total, called at
// each UNDIVIDED transition before the next guiding path is encoded (§4.6).
func (w *Worker) resetWeights() {
	for i := range w.huWei {
		w.huWei[i] = 0
	}
	w.totalWeight = 0
}

// setWeight assigns v a weight contribution, adding it to totalWeight if v
// is not currently assigned false. Called by the guiding-path encoder while
// synthesizing reifier variables for the current prefix.
func (w *Worker) setWeight(v Var, weight int) {
	w.huWei[v] = weight
	if w.assign[v] != lFalse {
		w.totalWeight += weight
	}
}

// weightDeficit reports whether the current totalWeight can no longer reach
// minSupp: the weighted-pruning conflict condition (§4.2).
func (w *Worker) weightDeficit() bool {
	return w.totalWeight < w.minSupp
}
