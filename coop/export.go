package coop

import "github.com/crillab/satchuim/solver"

// exporter is a Hub-bound implementation of solver.Exporter: publishing
// broadcasts to every sibling's inbox except the publisher's own, draining
// pops and clears the caller's own inbox. Imports are advisory only — a
// worker that never drains its inbox still behaves correctly, it just
// misses out on its siblings' pruning (§5 non-interference invariant).
type exporter struct {
	hub *Hub
	id  int
}

func (e *exporter) ExportUnit(workerID int, lit solver.Lit) {
	e.hub.mu.Lock()
	defer e.hub.mu.Unlock()
	for t := range e.hub.inboxes {
		if t == workerID {
			continue
		}
		e.hub.inboxes[t].units = append(e.hub.inboxes[t].units, lit)
	}
}

func (e *exporter) ExportClause(workerID int, lits []solver.Lit) {
	e.hub.mu.Lock()
	defer e.hub.mu.Unlock()
	for t := range e.hub.inboxes {
		if t == workerID {
			continue
		}
		e.hub.inboxes[t].clauses = append(e.hub.inboxes[t].clauses, lits)
	}
}

func (e *exporter) DrainUnits(workerID int) []solver.Lit {
	e.hub.mu.Lock()
	defer e.hub.mu.Unlock()
	units := e.hub.inboxes[workerID].units
	e.hub.inboxes[workerID].units = nil
	return units
}

func (e *exporter) DrainClauses(workerID int) [][]solver.Lit {
	e.hub.mu.Lock()
	defer e.hub.mu.Unlock()
	clauses := e.hub.inboxes[workerID].clauses
	e.hub.inboxes[workerID].clauses = nil
	return clauses
}
