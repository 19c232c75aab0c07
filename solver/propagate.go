package solver

// propagate.go implements two-watched-literal unit propagation with the
// weighted-deficit conflict check folded in, per the specification's §4.2
// algorithm and original_source/Solver.cc's propagate().

// propagate processes the queue until it is empty or a conflict is found,
// returning the conflicting clause's CRef, or CRefUndef if none arose.
func (w *Worker) propagate() CRef {
	var confl CRef = CRefUndef
	for w.qhead < len(w.trail) {
		p := w.trail[w.qhead]
		w.qhead++

		lst := w.watches.lists[p]
		i, j := 0, 0
		for i < len(lst) {
			blocker := lst[i].blocker
			if w.value(blocker) == lTrue {
				lst[j] = lst[i]
				i++
				j++
				continue
			}

			cr := lst[i].cref
			c := w.arena.get(cr)

			falseLit := p.Negation()
			if c.Get(0) == falseLit {
				c.Set(0, c.Get(1))
				c.Set(1, falseLit)
			}
			i++
			first := c.Get(0)
			newW := watcher{cref: cr, blocker: first}
			if first != blocker && w.value(first) == lTrue {
				lst[j] = newW
				j++
				continue
			}

			foundWatch := false
			for k := 2; k < c.Len(); k++ {
				if w.value(c.Get(k)) != lFalse {
					c.Set(1, c.Get(k))
					c.Set(k, falseLit)
					n1 := c.Get(1).Negation()
					w.watches.lists[n1] = append(w.watches.lists[n1], watcher{cref: cr, blocker: first})
					foundWatch = true
					break
				}
			}
			if foundWatch {
				continue
			}

			lst[j] = newW
			j++
			if w.weightDeficit() || w.value(first) == lFalse {
				confl = cr
				w.qhead = len(w.trail)
				for i < len(lst) {
					lst[j] = lst[i]
					i++
					j++
				}
				break
			}
			w.uncheckedEnqueue(first, cr)
		}
		w.watches.lists[p] = lst[:j]
	}
	return confl
}
