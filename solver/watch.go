package solver

// watcher pairs a clause handle with a blocking literal: a literal from the
// clause (not necessarily one of the two watched ones) that, if currently
// true, lets propagation skip loading the clause entirely (§4.2 step 1).
type watcher struct {
	cref    CRef
	blocker Lit
}

// watchIndex holds, for each literal p, the watchers for clauses containing
// ¬p as one of their two watched literals. smudge and cleanAll support lazy
// deletion (a smudged list is compacted by the next cleanAll call), but the
// solver removes clauses with detach, which drops their watchers
// immediately; propagate never calls cleanAll.
type watchIndex struct {
	lists  [][]watcher
	dirty  []bool
	smudged []Lit
}

func newWatchIndex(nbVars int) watchIndex {
	return watchIndex{
		lists: make([][]watcher, nbVars*2),
		dirty: make([]bool, nbVars*2),
	}
}

func (w *watchIndex) grow(nbVars int) {
	for len(w.lists) < nbVars*2 {
		w.lists = append(w.lists, nil)
		w.dirty = append(w.dirty, false)
	}
}

// watch registers cr as watching both ¬c[0] and ¬c[1].
func (w *watchIndex) watch(cr CRef, c *Clause) {
	l0, l1 := c.Get(0), c.Get(1)
	n0, n1 := l0.Negation(), l1.Negation()
	w.lists[n0] = append(w.lists[n0], watcher{cref: cr, blocker: l1})
	w.lists[n1] = append(w.lists[n1], watcher{cref: cr, blocker: l0})
}

// smudge marks p's watcher list as containing stale entries, to be swept out
// by the next cleanAll. Used for lazy clause detachment.
func (w *watchIndex) smudge(p Lit) {
	if !w.dirty[p] {
		w.dirty[p] = true
		w.smudged = append(w.smudged, p)
	}
}

// cleanAll compacts every smudged literal's list, dropping watchers whose
// cref is no longer attached. removed reports, for a given cref, whether it
// was detached (passed in by the caller, since the arena itself does not
// track attachment).
func (w *watchIndex) cleanAll(removed func(CRef) bool) {
	for _, p := range w.smudged {
		lst := w.lists[p]
		j := 0
		for i := range lst {
			if !removed(lst[i].cref) {
				lst[j] = lst[i]
				j++
			}
		}
		w.lists[p] = lst[:j]
		w.dirty[p] = false
	}
	w.smudged = w.smudged[:0]
}

// detach drops cr from both of its watched-literal lists immediately (a
// "strict" detach, as opposed to smudge's lazy one). Used outside the hot
// propagation path, e.g. when removing a clause during reduceLearnts.
func (w *watchIndex) detach(cr CRef, c *Clause) {
	n0, n1 := c.Get(0).Negation(), c.Get(1).Negation()
	w.lists[n0] = removeWatcher(w.lists[n0], cr)
	w.lists[n1] = removeWatcher(w.lists[n1], cr)
}

func removeWatcher(lst []watcher, cr CRef) []watcher {
	for i := range lst {
		if lst[i].cref == cr {
			last := len(lst) - 1
			lst[i] = lst[last]
			return lst[:last]
		}
	}
	return lst
}
