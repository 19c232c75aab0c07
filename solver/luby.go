package solver

// luby computes the Luby restart sequence value for the x-th restart,
// scaled by y, grounded on original_source/Solver.cc's luby(double y, int x)
// (itself the textbook MiniSat formula). Used when Cfg.LubyRestart is set;
// a plain geometric schedule (restartFirst * restartInc^x) is used otherwise.
func luby(y float64, x int) float64 {
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}
	result := 1.0
	for i := 0; i < seq; i++ {
		result *= y
	}
	return result
}

// restartBudget returns the number of conflicts the upcoming restart window
// may spend, for the curRestart-th restart (0-based).
func (w *Worker) restartBudget(curRestart int) int {
	if w.Cfg.LubyRestart {
		return int(luby(w.Cfg.RestartInc, curRestart) * float64(w.Cfg.RestartFirst))
	}
	budget := float64(w.Cfg.RestartFirst)
	for i := 0; i < curRestart; i++ {
		budget *= w.Cfg.RestartInc
	}
	return int(budget)
}
