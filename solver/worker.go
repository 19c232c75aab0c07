package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/crillab/satchuim/txndb"
)

// Stats are statistics about a worker's share of the search, provided for
// information purposes only (mirrors gophersat's solver.Stats).
type Stats struct {
	NbRestarts      int
	NbConflicts     int
	NbDecisions     int
	NbModels        int
	NbGuidingPaths  int
	NbUnitLearned   int
	NbLearned       int
	NbGC            int
	NbImportedUnits int
	NbImportedClauses int
}

// Worker is one CDCL search engine cooperating with WorkerCount-1 siblings
// through an Exporter (§4.8 "Cooperation hub"). Each worker owns its trail,
// watch lists and clause arena privately (§5: "never read by others"); the
// only data it shares is the read-only *txndb.Database and whatever it
// chooses to push through the Exporter.
type Worker struct {
	ID          int
	WorkerCount int
	Cfg         Config
	DB          *txndb.Database
	Exp         Exporter
	Log         *logrus.Entry

	Stats Stats

	nbItems int
	nbTrans int

	// --- variable/literal model & weight state (§3) ---
	assign      []lbool
	level       []int
	reason      []CRef
	polarity    []bool
	decisionVar []bool
	activity    []float64
	huWei       []int
	totalWeight int
	minSupp     int

	// --- trail & decision stack (§3) ---
	trail    []Lit
	trailLim []int
	qhead    int

	// --- clause storage (§4.1) ---
	arena      clauseArena
	watches    watchIndex
	encClauses []CRef // clauses synthesized for the current guiding path
	learnts    []CRef // learned or imported clauses, kept across guiding paths (reduceLearnts prunes them)
	maxClauses int     // adaptive GC threshold (§4.7)

	// --- decision heuristic (§4.4) ---
	heap     decisionHeap
	varInc   float64
	clauseInc float32

	// --- conflict analysis scratch (§4.3) ---
	seen           []bool
	analyzeToClear []Var

	// --- guiding-path state (§4.6, §4.7) ---
	guidingIndex int  // next guiding-path position to try (the "ind" of the original)
	divided      bool // DIVIDED (true) vs UNDIVIDED (false)
	ok           bool // false once a top-level contradiction is derived

	// occ is scratch reused across encodeGuidingPath calls: per-item
	// accumulated transaction weight, indexed by item variable.
	occ []int

	onModel func(items []int)
}

// NewWorker builds a worker that will enumerate guiding paths
// id, id+workerCount, id+2*workerCount, ... over db. exp may be nil, in
// which case the worker behaves as if it had no siblings.
func NewWorker(id, workerCount int, db *txndb.Database, cfg Config, exp Exporter, log *logrus.Entry) *Worker {
	if exp == nil {
		exp = noopExporter{}
	}
	w := &Worker{
		ID:          id,
		WorkerCount: workerCount,
		Cfg:         cfg,
		DB:          db,
		Exp:         exp,
		Log:         log,
		nbItems:     db.NbItems,
		nbTrans:     db.NbTrans,
		minSupp:     db.MinSupp,
		varInc:      1.0,
		clauseInc:   1.0,
		divided:     true,
		ok:          true,
		guidingIndex: id,
		maxClauses:  cfg.MaxClausesInit,
	}
	total := db.NbItems + db.NbTrans
	w.assign = make([]lbool, total)
	w.level = make([]int, total)
	w.reason = make([]CRef, total)
	for i := range w.reason {
		w.reason[i] = CRefUndef
	}
	w.polarity = make([]bool, total)
	w.decisionVar = make([]bool, total)
	w.activity = make([]float64, total)
	w.huWei = make([]int, total)
	w.seen = make([]bool, total)
	w.occ = make([]int, total)
	w.watches = newWatchIndex(total)
	for v := 0; v < db.NbItems; v++ {
		w.decisionVar[v] = true
		w.polarity[v] = false // forced positive phase for item vars (§4.4)
	}
	w.heap = newDecisionHeap(w)
	itemVars := make([]int, db.NbItems)
	for v := range itemVars {
		itemVars[v] = v
	}
	w.heap.build(itemVars)
	for t := 0; t < db.NbTrans; t++ {
		w.newVar(false, false)
	}
	return w
}

// nVars returns the number of variables allocated so far (items, then
// transactions, then any reifiers introduced by encoding).
func (w *Worker) nVars() int { return len(w.assign) }

// newVar appends a fresh variable and returns it. sign is its initial saved
// polarity; isDecision controls whether the variable ever gets inserted in
// the decision heap (§4.4: transaction and reifier variables are implied,
// never branched on).
func (w *Worker) newVar(sign, isDecision bool) Var {
	v := Var(w.nVars())
	w.assign = append(w.assign, lUndef)
	w.level = append(w.level, 0)
	w.reason = append(w.reason, CRefUndef)
	w.polarity = append(w.polarity, sign)
	w.decisionVar = append(w.decisionVar, isDecision)
	w.activity = append(w.activity, 0)
	w.huWei = append(w.huWei, 0)
	w.seen = append(w.seen, false)
	w.occ = append(w.occ, 0)
	w.watches.grow(w.nVars())
	w.heap.insert(int(v)) // no-op unless isDecision made v a decision variable above
	return v
}

// decisionLevel returns the current decision level (0 at the root).
func (w *Worker) decisionLevel() int { return len(w.trailLim) }

// value returns lit's current truth value.
func (w *Worker) value(lit Lit) lbool {
	return litValue(lit, w.assign[lit.Var()])
}

// currentItemset returns the positive item variables of the last assignment reached,
// as 1-based item ids — the itemset the search driver just emitted.
func (w *Worker) currentItemset() []int {
	items := make([]int, 0, w.nbItems)
	for v := 0; v < w.nbItems; v++ {
		if w.assign[v] == lTrue {
			items = append(items, v+1)
		}
	}
	return items
}
