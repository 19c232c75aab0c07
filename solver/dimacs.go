package solver

import (
	"fmt"
	"io"
)

// DIMACS dumps the worker's currently live clauses (encoded-path clauses
// plus learnts) in DIMACS CNF form, for debugging a single worker's view of
// the search in isolation. Folds in the original source's PBString/
// toDimacs/printModels helpers, which together only ever served this
// purpose (§"Supplemented features").
func (w *Worker) DIMACS(out io.Writer) error {
	live := make([]CRef, 0, len(w.encClauses)+len(w.learnts))
	live = append(live, w.encClauses...)
	live = append(live, w.learnts...)

	if _, err := fmt.Fprintf(out, "p cnf %d %d\n", w.nVars(), len(live)); err != nil {
		return err
	}
	for _, cr := range live {
		c := w.arena.get(cr)
		if _, err := fmt.Fprintln(out, c.CNF()); err != nil {
			return err
		}
	}
	return nil
}
