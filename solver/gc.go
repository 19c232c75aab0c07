package solver

// gc.go drives arena compaction (§4.1): allocate a target arena sized to
// live clauses only, relocate every handle a component holds (watch lists,
// reasons, encClauses, learnts), then swap arenas in. Grounded on
// original_source/Solver.cc's garbageCollect/relocAll and on
// other_examples/togatoga-gatosat's ClauseAllocator.moveTo.
func (w *Worker) garbageCollect() {
	to := clauseArena{records: make([]record, 0, len(w.arena.records))}

	for lit := 0; lit < len(w.watches.lists); lit++ {
		lst := w.watches.lists[lit]
		for i := range lst {
			lst[i].cref = w.arena.reloc(lst[i].cref, &to)
		}
	}

	for v := range w.reason {
		if w.reason[v] != CRefUndef && w.locked(w.reason[v]) {
			w.reason[v] = w.arena.reloc(w.reason[v], &to)
		} else {
			w.reason[v] = CRefUndef
		}
	}

	for i, cr := range w.encClauses {
		w.encClauses[i] = w.arena.reloc(cr, &to)
	}
	for i, cr := range w.learnts {
		w.learnts[i] = w.arena.reloc(cr, &to)
	}

	w.arena = to
	w.Stats.NbGC++
}

// reduceLearnts removes every non-binary, unlocked learned clause
// unconditionally. This is a blunter policy than gophersat/minisat's
// activity-sorted partial reduction; it preserves the transcribed source's
// own reduceDB behavior rather than "fixing" it to an LBD-sorted variant
// (§9 open question #2 — see DESIGN.md).
func (w *Worker) reduceLearnts() {
	if len(w.learnts) == 0 {
		return
	}
	kept := w.learnts[:0]
	for _, cr := range w.learnts {
		c := w.arena.get(cr)
		if c.Len() > 2 && !w.locked(cr) {
			w.watches.detach(cr, c)
			w.arena.free(cr)
			continue
		}
		kept = append(kept, cr)
	}
	w.learnts = kept
}

// clearGuidingPathClauses detaches and frees every clause synthesized for
// the current guiding path, preserving conflict-learned clauses, at each
// UNDIVIDED transition. Resolves open question #2: the original's
// reduceDB(1) removes "clauses" unconditionally because, in that context,
// "clauses" is the per-guiding-path encoding, not the persistent learnt set.
func (w *Worker) clearGuidingPathClauses() {
	for _, cr := range w.encClauses {
		c := w.arena.get(cr)
		w.watches.detach(cr, c)
		w.arena.free(cr)
	}
	w.encClauses = w.encClauses[:0]
}
