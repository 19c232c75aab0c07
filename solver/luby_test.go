package solver

import "testing"

func TestLubySequence(t *testing.T) {
	// The classic Luby sequence (base 2): 1 1 2 1 1 2 4 1 1 2 1 1 2 4 8 ...
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}
	for x, w := range want {
		if got := luby(2, x); got != w {
			t.Errorf("luby(2, %d) = %v, want %v", x, got, w)
		}
	}
}

func TestRestartBudgetGrowsWithoutLuby(t *testing.T) {
	w := &Worker{Cfg: Config{LubyRestart: false, RestartFirst: 100, RestartInc: 2}}
	b0 := w.restartBudget(0)
	b1 := w.restartBudget(1)
	if b0 != 100 {
		t.Errorf("restartBudget(0) = %d, want 100", b0)
	}
	if b1 <= b0 {
		t.Errorf("restartBudget should grow geometrically without Luby: b0=%d b1=%d", b0, b1)
	}
}
