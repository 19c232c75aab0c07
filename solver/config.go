package solver

// Config bundles the tunables enumerated in the specification's external
// interfaces section. Defaults mirror original_source/Solver.cc's Option
// declarations.
type Config struct {
	VarDecay       float64 // variable activity decay per conflict
	ClauseDecay    float64 // clause activity decay per conflict
	RandomVarFreq  float64 // probability of random branching (not consulted by the solver)
	CCMinMode      int     // 0 = none, 1 = local, 2 = recursive
	PhaseSaving    int     // 0 = off, 1 = current-level only, 2 = always
	LubyRestart    bool
	RestartFirst   int
	RestartInc     float64
	GarbageFrac    float64 // not consulted: compaction follows the MaxClausesInit threshold
	RndInitAct     bool
	RndPol         bool
	EnumClosed     bool // emit closure constraints: enumerate closed itemsets
	MaxClausesInit int  // initial clauses.size() threshold before GC (§4.7)
	ExportSizeCap  int  // size cap for exported learned clauses; the search driver exports nothing (§4.8)

	// EmitRedundantSupportClauses resolves open question #3 (§9): the
	// original gates a second, logically-redundant direction of the
	// support clause (q_t -> at least one remaining item) behind
	// verbosity == 1. Here it is its own switch, off by default since the
	// clause is subsumed by the q_t <-> conjunction encoding already
	// emitted.
	EmitRedundantSupportClauses bool
}

// DefaultConfig returns the specification's documented defaults (§6).
func DefaultConfig() Config {
	return Config{
		VarDecay:       0.95,
		ClauseDecay:    0.999,
		RandomVarFreq:  0,
		CCMinMode:      2,
		PhaseSaving:    2,
		LubyRestart:    true,
		RestartFirst:   100,
		RestartInc:     2,
		GarbageFrac:    0.20,
		RndInitAct:     false,
		RndPol:         false,
		EnumClosed:     false,
		MaxClausesInit: 100,
		ExportSizeCap:  8,
	}
}
