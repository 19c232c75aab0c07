package solver

import "testing"

func TestArenaAllocGet(t *testing.T) {
	var a clauseArena
	lits := []Lit{Var(0).Lit(), Var(1).Lit().Negation()}
	cr := a.alloc(lits, false)
	c := a.get(cr)
	if c.Len() != 2 {
		t.Fatalf("expected 2 literals, got %d", c.Len())
	}
	if c.Get(0) != lits[0] || c.Get(1) != lits[1] {
		t.Fatalf("clause literals do not match what was allocated")
	}
}

func TestArenaFreeThenGetPanics(t *testing.T) {
	var a clauseArena
	cr := a.alloc([]Lit{Var(0).Lit()}, false)
	a.free(cr)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic dereferencing a freed handle")
		}
	}()
	a.get(cr)
}

func TestArenaRelocIdempotent(t *testing.T) {
	var a clauseArena
	cr := a.alloc([]Lit{Var(0).Lit(), Var(1).Lit()}, false)
	var to clauseArena
	r1 := a.reloc(cr, &to)
	r2 := a.reloc(cr, &to)
	if r1 != r2 {
		t.Fatalf("reloc must return the same destination on repeated calls, got %d and %d", r1, r2)
	}
	if len(to.records) != 1 {
		t.Fatalf("clause should be copied exactly once, got %d records", len(to.records))
	}
}

func TestArenaSizeAccountsForWaste(t *testing.T) {
	var a clauseArena
	cr1 := a.alloc([]Lit{Var(0).Lit(), Var(1).Lit()}, false)
	a.alloc([]Lit{Var(2).Lit()}, false)
	before := a.size()
	a.free(cr1)
	after := a.size()
	if after != before {
		t.Fatalf("size should count wasted units too: before=%d after=%d", before, after)
	}
	if a.wasted() == 0 {
		t.Fatalf("expected nonzero wasted units after a free")
	}
}
