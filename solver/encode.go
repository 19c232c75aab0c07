package solver

// encode.go is the guiding-path encoder (§4.7): given an ordered item list
// and an index k, it materializes the reifier/support/closure clauses
// describing the sub-database under the head item[k-1], negating every
// earlier item. This is where the mining problem's combinatorics actually
// live; the CDCL core above it is domain-agnostic.

// encodeGuidingPath attempts to encode the guiding path at position k,
// where items is the ordered item-variable list (db.Items, offset so item
// ids become Vars directly). It returns false if the prefix's total weight
// already falls under min_supp (the worker should advance to the next k),
// true once the path is DIVIDED and ready for search.
func (w *Worker) encodeGuidingPath(items []int, k int) bool {
	w.cancelAll()
	w.resetWeights()
	w.encClauses = w.encClauses[:0]

	w.newDecisionLevel()
	for i := 0; i < k-1; i++ {
		neg := Var(items[i]).SignedLit(true)
		if w.value(neg) == lFalse {
			return false
		}
		if w.value(neg) == lUndef {
			w.uncheckedEnqueue(neg, CRefUndef)
		}
	}
	head := Var(items[k-1])
	headLit := head.Lit()
	if w.DB.ItemWeight[items[k-1]] < w.DB.MinSupp {
		return false
	}
	if w.value(headLit) == lFalse {
		return false
	}
	if w.value(headLit) == lUndef {
		w.uncheckedEnqueue(headLit, CRefUndef)
	}
	if w.propagate() != CRefUndef {
		return false
	}

	occ := w.occ
	for i := range occ {
		occ[i] = 0
	}

	qItems := make(map[int]Var, len(w.DB.Appearances[items[k-1]]))
	remaining := make(map[int][]int, len(w.DB.Appearances[items[k-1]]))

	for _, t := range w.DB.Appearances[items[k-1]] {
		qVar := w.newVar(false, false)
		qItems[t] = qVar
		qLit := qVar.Lit()

		trans := w.DB.Transactions[t]
		wts := w.DB.Weights[t]
		var rem []int
		wcurTrans := 0
		for i, r := range trans {
			if r == items[k-1] {
				continue // the head item itself is not a "remaining" item
			}
			rLit := Var(r).Lit()
			if w.value(rLit) == lFalse {
				continue
			}
			rem = append(rem, r)
			a := w.newVar(false, false)
			cr1 := w.arena.alloc([]Lit{a.Lit().Negation(), qLit}, false)
			w.watches.watch(cr1, w.arena.get(cr1))
			w.encClauses = append(w.encClauses, cr1)
			cr2 := w.arena.alloc([]Lit{a.Lit().Negation(), rLit}, false)
			w.watches.watch(cr2, w.arena.get(cr2))
			w.encClauses = append(w.encClauses, cr2)
			weight := wts[i]
			w.setWeight(a, weight)
			wcurTrans += weight
		}
		remaining[t] = rem
		for _, r := range rem {
			occ[r] += wcurTrans
		}
	}

	w.simplifyItems(items[k:], occ)
	if w.propagate() != CRefUndef {
		return false
	}

	if w.weightDeficit() {
		return false
	}

	for _, t := range w.DB.Appearances[items[k-1]] {
		qVar := qItems[t]
		qLit := qVar.Lit()
		rem := remaining[t]
		var stillRem []int
		for _, r := range rem {
			if w.value(Var(r).Lit()) != lFalse {
				stillRem = append(stillRem, r)
			}
		}
		for _, r := range stillRem {
			cr := w.arena.alloc([]Lit{qLit.Negation(), Var(r).Lit()}, false)
			w.watches.watch(cr, w.arena.get(cr))
			w.encClauses = append(w.encClauses, cr)
		}
		big := make([]Lit, 0, len(stillRem)+1)
		big = append(big, qLit)
		for _, r := range stillRem {
			big = append(big, Var(r).Lit().Negation())
		}
		if len(big) >= 2 {
			cr := w.arena.alloc(big, false)
			w.watches.watch(cr, w.arena.get(cr))
			w.encClauses = append(w.encClauses, cr)
		}
		if w.Cfg.EmitRedundantSupportClauses && len(stillRem) > 0 {
			// q_t -> at least one remaining item (subsumed by the binaries above)
			red := make([]Lit, 0, len(stillRem)+1)
			red = append(red, qLit.Negation())
			for _, r := range stillRem {
				red = append(red, Var(r).Lit())
			}
			cr := w.arena.alloc(red, false)
			w.watches.watch(cr, w.arena.get(cr))
			w.encClauses = append(w.encClauses, cr)
		}
	}

	if w.Cfg.EnumClosed {
		w.addClosureClauses(items, k, qItems)
	}

	w.rescopeHeap(items, k)

	if len(w.arena.records) > w.maxClauses {
		w.garbageCollect()
		w.maxClauses = int(float64(w.maxClauses) * 1.1)
	} else {
		w.maxClauses = int(float64(w.maxClauses) * 0.9)
		if w.maxClauses < w.Cfg.MaxClausesInit {
			w.maxClauses = w.Cfg.MaxClausesInit
		}
	}

	w.divided = true
	return true
}

// simplifyItems forces false any still-undefined item whose accumulated
// transaction weight under the current prefix already falls under min_supp,
// mirroring original_source/Solver.cc's simplifier() pre-filtering pass
// ("Supplemented features" in SPEC_FULL.md). Run once per guiding path,
// right after the reifier clauses are built and before propagation and the
// support clauses.
func (w *Worker) simplifyItems(candidates []int, occ []int) {
	for _, item := range candidates {
		if occ[item] < w.DB.MinSupp && w.value(Var(item).Lit()) == lUndef {
			neg := Var(item).SignedLit(true)
			w.uncheckedEnqueue(neg, CRefUndef)
		}
	}
}

// addClosureClauses enforces the canonical closed-itemset condition for
// every item q not already false: "if every transaction outside q's
// appearance set is already covered by q_t literals, q must be included"
// (§4.7 "Closure clause"). It runs over both the fresh items of the current
// sub-database (items[k:]) and the previously-divided prefix items
// (items[:k-1]), mirroring original_source/Solver.cc's two
// add_closure_constraints call sites.
func (w *Worker) addClosureClauses(items []int, k int, qItems map[int]Var) {
	dp := w.DB.Appearances[items[k-1]]
	for _, item := range items[k:] {
		if w.value(Var(item).Lit()) == lFalse {
			continue
		}
		lits := w.closureLits(dp, item, qItems)
		lits = append(lits, Var(item).Lit())
		if len(lits) >= 2 {
			cr := w.arena.alloc(lits, false)
			w.watches.watch(cr, w.arena.get(cr))
			w.encClauses = append(w.encClauses, cr)
		}
	}

	// Previously-divided prefix items are already forced false by the
	// prefix-negation loop in encodeGuidingPath, so no item literal is
	// appended here: the clause only reinforces structure among the
	// current sub-database's reifiers (Solver.cc's 2-arg
	// add_closure_constraints overload, guarded by min_supp <= occ[item]).
	for _, item := range items[:k-1] {
		if w.occ[item] < w.DB.MinSupp {
			continue
		}
		lits := w.closureLits(dp, item, qItems)
		if len(lits) >= 1 {
			cr := w.arena.alloc(lits, false)
			w.watches.watch(cr, w.arena.get(cr))
			w.encClauses = append(w.encClauses, cr)
		}
	}
}

// closureLits builds the negated-reifier literal list for item's closure
// clause: one qv.Negation() per dp transaction that item does not appear in.
func (w *Worker) closureLits(dp []int, item int, qItems map[int]Var) []Lit {
	lits := make([]Lit, 0, len(dp)+1)
	appearing := make(map[int]bool, len(w.DB.Appearances[item]))
	for _, t := range w.DB.Appearances[item] {
		appearing[t] = true
	}
	for _, t := range dp {
		if !appearing[t] {
			if qv, ok := qItems[t]; ok {
				lits = append(lits, qv.Lit().Negation())
			}
		}
	}
	return lits
}

// rescopeHeap rebuilds the decision heap from the items still undefined
// under the current prefix, activity-seeded by rarity: |D_p| minus the
// number of D_p transactions containing the item, so rarer items (the ones
// most likely to cause a quick conflict) are branched on earlier.
func (w *Worker) rescopeHeap(items []int, k int) {
	dpSize := len(w.DB.Appearances[items[k-1]])
	ns := make([]int, 0, len(items)-k)
	for _, item := range items[k:] {
		if w.value(Var(item).Lit()) != lUndef {
			continue
		}
		containing := 0
		for _, t := range w.DB.Appearances[item] {
			if w.isInDp(items, k, t) {
				containing++
			}
		}
		w.activity[item] = float64(dpSize - containing)
		ns = append(ns, item)
	}
	w.heap.build(ns)
}

func (w *Worker) isInDp(items []int, k int, t int) bool {
	for _, dt := range w.DB.Appearances[items[k-1]] {
		if dt == t {
			return true
		}
	}
	return false
}
