package solver

import "testing"

func TestLitNegation(t *testing.T) {
	v := Var(3)
	pos := v.Lit()
	neg := pos.Negation()
	if neg.Negation() != pos {
		t.Errorf("double negation should be identity, got %d", neg.Negation())
	}
	if pos.IsPositive() == neg.IsPositive() {
		t.Errorf("negation must flip polarity")
	}
	if pos.Var() != v || neg.Var() != v {
		t.Errorf("negation must preserve the underlying variable")
	}
}

func TestIntToLit(t *testing.T) {
	cases := []struct {
		dimacs int
		want   int32
	}{
		{1, 1}, {-1, -1}, {5, 5}, {-5, -5},
	}
	for _, c := range cases {
		lit := IntToLit(c.dimacs)
		if got := lit.Int(); got != c.want {
			t.Errorf("IntToLit(%d).Int() = %d, want %d", c.dimacs, got, c.want)
		}
	}
}

func TestLitValue(t *testing.T) {
	pos := Var(0).Lit()
	neg := pos.Negation()
	if litValue(pos, lTrue) != lTrue {
		t.Errorf("positive literal under lTrue assignment should be lTrue")
	}
	if litValue(neg, lTrue) != lFalse {
		t.Errorf("negative literal under lTrue assignment should be lFalse")
	}
	if litValue(pos, lUndef) != lUndef {
		t.Errorf("any literal under lUndef assignment should be lUndef")
	}
}
