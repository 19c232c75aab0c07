package solver

// analyze.go implements first-UIP conflict analysis with the three
// conflict-clause-minimization modes original_source/Solver.cc calls
// ccmin_mode 0 (none), 1 (local/self-subsuming) and 2 (recursive).
//
// Kept implemented but uncommitted from the search loop: Solver.cc defines
// analyze the same way and never calls it from search() either, preferring
// the chronological one-level flip (search.go, §9 open question #1).

// analyze walks back from confl to the first unique implication point,
// returning the learned clause (out[0] is the asserting literal) and the
// backtrack level it should be enqueued at.
func (w *Worker) analyze(confl CRef) (out []Lit, btLevel int) {
	pathC := 0
	p := LitUndef
	out = append(out, LitUndef) // placeholder for the asserting literal

	idx := len(w.trail) - 1
	for {
		c := w.arena.get(confl)
		if c.Learnt() {
			w.bumpClauseActivity(c)
		}
		start := 0
		if p != LitUndef {
			start = 1
		}
		for j := start; j < c.Len(); j++ {
			q := c.Get(j)
			v := q.Var()
			if w.seen[v] || w.level[v] == 0 {
				continue
			}
			w.bumpVarActivity(v)
			w.seen[v] = true
			if w.level[v] >= w.decisionLevel() {
				pathC++
			} else {
				out = append(out, q)
			}
		}

		for !w.seen[w.trail[idx].Var()] {
			idx--
		}
		p = w.trail[idx]
		pv := p.Var()
		confl = w.reason[pv]
		w.seen[pv] = false
		pathC--
		idx--
		if pathC <= 0 {
			break
		}
	}
	out[0] = p.Negation()

	w.analyzeToClear = append(w.analyzeToClear[:0], varsOf(out)...)
	switch w.Cfg.CCMinMode {
	case 2:
		out = w.minimizeRecursive(out)
	case 1:
		out = w.minimizeLocal(out)
	}

	if len(out) == 1 {
		btLevel = 0
	} else {
		maxI := 1
		for i := 2; i < len(out); i++ {
			if w.level[out[i].Var()] > w.level[out[maxI].Var()] {
				maxI = i
			}
		}
		out[1], out[maxI] = out[maxI], out[1]
		btLevel = w.level[out[1].Var()]
	}

	for _, v := range w.analyzeToClear {
		w.seen[v] = false
	}
	return out, btLevel
}

func varsOf(lits []Lit) []Var {
	vs := make([]Var, len(lits))
	for i, l := range lits {
		vs[i] = l.Var()
	}
	return vs
}

// minimizeLocal drops literals subsumed by a single reason clause already
// in the learned clause (ccmin_mode 1).
func (w *Worker) minimizeLocal(out []Lit) []Lit {
	j := 1
	for i := 1; i < len(out); i++ {
		v := out[i].Var()
		reason := w.reason[v]
		redundant := false
		if reason != CRefUndef {
			c := w.arena.get(reason)
			redundant = true
			for k := 1; k < c.Len(); k++ {
				if !w.seen[c.Get(k).Var()] && w.level[c.Get(k).Var()] != 0 {
					redundant = false
					break
				}
			}
		}
		if !redundant {
			out[j] = out[i]
			j++
		}
	}
	return out[:j]
}

// minimizeRecursive drops any literal whose falsification follows from
// other literals already implied at decision level 0 or already in the
// learned clause, transitively (ccmin_mode 2).
func (w *Worker) minimizeRecursive(out []Lit) []Lit {
	j := 1
	for i := 1; i < len(out); i++ {
		v := out[i].Var()
		if w.reason[v] == CRefUndef || !w.litRedundant(out[i]) {
			out[j] = out[i]
			j++
		}
	}
	return out[:j]
}

// litRedundant reports whether p's falsification is implied by literals
// already marked seen or already known redundant, recursively following
// reason clauses back to decision literals or level-0 units.
func (w *Worker) litRedundant(p Lit) bool {
	type frame struct {
		lit Lit
		idx int
	}
	stack := []frame{{lit: p, idx: 0}}
	top := len(w.analyzeToClear)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		c := w.arena.get(w.reason[f.lit.Var()])
		if f.idx == 0 {
			f.idx = 1
		}
		if f.idx < c.Len() {
			q := c.Get(f.idx)
			f.idx++
			qv := q.Var()
			if w.seen[qv] || w.level[qv] == 0 {
				continue
			}
			if w.reason[qv] != CRefUndef {
				w.seen[qv] = true
				w.analyzeToClear = append(w.analyzeToClear, qv)
				stack = append(stack, frame{lit: q, idx: 0})
				continue
			}
			// q is a decision literal with no reason: p is not redundant.
			for _, v := range w.analyzeToClear[top:] {
				w.seen[v] = false
			}
			w.analyzeToClear = w.analyzeToClear[:top]
			return false
		}
		stack = stack[:len(stack)-1]
	}
	return true
}

func (w *Worker) bumpVarActivity(v Var) {
	w.activity[v] += w.varInc
	if w.activity[v] > 1e100 {
		for i := range w.activity {
			w.activity[i] *= 1e-100
		}
		w.varInc *= 1e-100
	}
	if w.heap.contains(int(v)) {
		w.heap.decrease(int(v))
	}
}

func (w *Worker) bumpClauseActivity(c *Clause) {
	c.activity += w.clauseInc
	if c.activity > 1e20 {
		for _, cr := range w.learnts {
			w.arena.get(cr).activity *= 1e-20
		}
		w.clauseInc *= 1e-20
	}
}

func (w *Worker) decayVarActivity() {
	w.varInc /= w.Cfg.VarDecay
}

func (w *Worker) decayClauseActivity() {
	w.clauseInc /= float32(w.Cfg.ClauseDecay)
}
