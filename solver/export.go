package solver

// Exporter is the narrow interface a Worker needs from its cooperation hub
// (§4.8). A Worker never sees the hub's concrete type, nor the sibling
// workers themselves — only this interface, so the hub package can own
// worker-pool orchestration without the solver package importing it back.
type Exporter interface {
	// ExportUnit publishes a level-0 unit literal derived by workerID to
	// every sibling's inbox.
	ExportUnit(workerID int, lit Lit)
	// ExportClause publishes a freshly learned clause (already known to
	// be at or under the configured size cap) to every sibling's inbox.
	ExportClause(workerID int, lits []Lit)
	// DrainUnits returns (and clears) the units imported for workerID
	// since the last drain.
	DrainUnits(workerID int) []Lit
	// DrainClauses returns (and clears) the clauses imported for
	// workerID since the last drain.
	DrainClauses(workerID int) [][]Lit
}

// noopExporter is used by single-worker configurations (and by tests) that
// need no cooperation at all.
type noopExporter struct{}

func (noopExporter) ExportUnit(int, Lit)        {}
func (noopExporter) ExportClause(int, []Lit)    {}
func (noopExporter) DrainUnits(int) []Lit       { return nil }
func (noopExporter) DrainClauses(int) [][]Lit   { return nil }
