package solver

// CRef is an opaque handle into a clauseArena. It is the only way the rest
// of the solver refers to a clause: watch lists, reasons, the learnt and
// original clause sets and cached models all hold CRefs rather than *Clause,
// so that arena compaction (see gc.go) can relocate clauses freely as long
// as every handle holder is visited by relocAll.
type CRef int32

// CRefUndef is the reference held by a variable with no reason (a decision,
// or an as-yet-unassigned variable).
const CRefUndef CRef = -1

// record is one arena slot: a clause plus compaction bookkeeping.
type record struct {
	clause    Clause
	wasted    bool // freed, slated for reclamation on next compaction
	relocated bool // already copied to a newer arena during this reloc pass
	relocTo   CRef // where it was copied to, valid iff relocated
}

// clauseArena is the append-only backing store described in the
// specification's §4.1: clauses are allocated contiguously, freeing only
// marks the slot wasted, and garbage collection (gc.go) periodically
// compacts into a freshly sized arena, rewriting every live handle through
// reloc.
//
// Grounded on other_examples/togatoga-gatosat__clauseallocator.go for the
// handle/index shape, and on original_source/Solver.cc's ClauseAllocator for
// the wasted-bytes/compaction contract.
type clauseArena struct {
	records     []record
	wastedUnits int // approximate "wasted bytes": sum of freed clauses' lengths
}

// alloc appends a new clause and returns its handle.
func (a *clauseArena) alloc(lits []Lit, learnt bool) CRef {
	cr := CRef(len(a.records))
	a.records = append(a.records, record{clause: *newClause(lits, learnt)})
	return cr
}

// get dereferences cr. Panics if cr was freed: callers must never retain a
// CRef past a call to free for that handle.
func (a *clauseArena) get(cr CRef) *Clause {
	r := &a.records[cr]
	if r.wasted {
		panic("solver: dereferencing a freed clause handle")
	}
	return &r.clause
}

// free marks cr's slot as wasted. The literals are not reclaimed until the
// next compaction (garbageCollect in gc.go).
func (a *clauseArena) free(cr CRef) {
	r := &a.records[cr]
	if r.wasted {
		return
	}
	r.wasted = true
	a.wastedUnits += len(r.clause.lits) + clauseOverhead
}

// size returns the arena's total unit count (live + wasted), the same
// currency wasted() is expressed in.
func (a *clauseArena) size() int {
	n := 0
	for i := range a.records {
		if !a.records[i].wasted {
			n += len(a.records[i].clause.lits) + clauseOverhead
		}
	}
	return n + a.wastedUnits
}

// wasted returns the number of units occupied by freed-but-not-compacted
// clauses.
func (a *clauseArena) wasted() int { return a.wastedUnits }

// clauseOverhead approximates the per-clause header cost (flags, activity,
// slice header) in the same units as literal counts, so garbage_frac
// comparisons behave sensibly even for all-binary-clause workloads.
const clauseOverhead = 3

// reloc copies cr's clause into to (unless already copied during this pass)
// and returns its handle there. Idempotent within a single compaction pass:
// the second call for the same cr returns the cached destination instead of
// duplicating the clause, which is what lets watch lists, reasons and the
// original/learnt clause sets all reloc the same handle without double
// copying.
func (a *clauseArena) reloc(cr CRef, to *clauseArena) CRef {
	r := &a.records[cr]
	if r.relocated {
		return r.relocTo
	}
	lits := make([]Lit, len(r.clause.lits))
	copy(lits, r.clause.lits)
	newCR := CRef(len(to.records))
	newClause := r.clause
	newClause.lits = lits
	to.records = append(to.records, record{clause: newClause})
	r.relocated = true
	r.relocTo = newCR
	return newCR
}

// moveTo replaces to's contents with a's, consuming a. Mirrors
// ClauseAllocator::moveTo in the original source: after the call, a must not
// be used again.
func (a *clauseArena) moveTo(to *clauseArena) {
	*to = *a
}
