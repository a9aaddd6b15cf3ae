package sat

import "testing"

func TestLiteralDIMACSRoundTrip(t *testing.T) {
	for _, n := range []int{1, -1, 2, -2, 17, -17} {
		l := LiteralFromDIMACS(n)
		if got := l.DIMACS(); got != n {
			t.Errorf("LiteralFromDIMACS(%d).DIMACS() = %d, want %d", n, got, n)
		}
	}
}

func TestLiteralComplement(t *testing.T) {
	l := PosLiteral(3)
	c := l.Complement()
	if c != NegLiteral(3) {
		t.Errorf("Complement(pos(3)) = %v, want %v", c, NegLiteral(3))
	}
	if c.Complement() != l {
		t.Errorf("Complement is not its own inverse for %v", l)
	}
}

func TestLiteralPolarity(t *testing.T) {
	if !PosLiteral(5).IsPositive() {
		t.Error("PosLiteral(5) should be positive")
	}
	if NegLiteral(5).IsPositive() {
		t.Error("NegLiteral(5) should not be positive")
	}
	if PosLiteral(5).Var() != 5 || NegLiteral(5).Var() != 5 {
		t.Error("Var() should ignore polarity")
	}
}
