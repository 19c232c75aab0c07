package solver

import (
	"fmt"
	"strings"
)

// A Clause is a length-prefixed literal sequence (in Go, simply a slice)
// together with the bookkeeping CDCL needs: whether it was learned, whether
// it is currently locked (is some variable's reason), a mark for pending
// removal, and an activity score used by clause-deletion heuristics.
//
// Clauses are identified by opaque CRef handles into a clauseArena, never by
// pointer: the arena may relocate a clause's backing storage during
// compaction (see arena.go), so nothing outside the arena may cache a
// *Clause across a garbage collection.
type Clause struct {
	lits     []Lit
	learnt   bool
	locked   bool
	mark     bool // slated for removal; unused: clauseArena.free records freed slots in record.wasted
	activity float32
}

// newClause builds a clause from lits. lits is taken by reference: callers
// must not reuse the backing slice afterwards.
func newClause(lits []Lit, learnt bool) *Clause {
	return &Clause{lits: lits, learnt: learnt}
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Get returns the i-th literal.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// Set overwrites the i-th literal.
func (c *Clause) Set(i int, l Lit) { c.lits[i] = l }

// Swap exchanges the i-th and j-th literals; used to maintain the
// two-watched-literal invariant (c[0], c[1] always the watched pair).
func (c *Clause) Swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }

// Learnt reports whether c was derived by conflict analysis or imported
// from a sibling worker, rather than part of the original encoding.
func (c *Clause) Learnt() bool { return c.learnt }

// Lock sets c's locked flag. Clause-database reduction and garbage
// collection do not read this flag: they decide whether a clause is some
// variable's reason through Worker.locked.
func (c *Clause) Lock() { c.locked = true }

// Unlock clears the lock set by Lock.
func (c *Clause) Unlock() { c.locked = false }

// IsLocked reports whether c's locked flag is set.
func (c *Clause) IsLocked() bool { return c.locked }

// CNF renders the clause as a DIMACS line, for debug dumps.
func (c *Clause) CNF() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = fmt.Sprintf("%d", l.Int())
	}
	return strings.Join(parts, " ") + " 0"
}
