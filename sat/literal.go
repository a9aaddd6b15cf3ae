package sat

import "fmt"

// Var names a propositional variable. Variables are numbered the same way
// DIMACS numbers them: 1..NumVars.
type Var int

// Literal is a variable together with a polarity, represented the same way
// DIMACS represents it: a nonzero signed integer. A positive value n denotes
// the positive literal of variable n; a negative value -n denotes the
// negative literal of variable n. Literal(0) is never valid.
//
// This makes the DIMACS round-trip trivial (the wire format *is* the
// internal identifier) while still satisfying the requirement that
// complementary literals map to table positions that differ by exactly
// NumVars: see Solver.idx.
type Literal int

// PosLiteral returns the positive literal of variable v.
func PosLiteral(v Var) Literal {
	return Literal(v)
}

// NegLiteral returns the negative literal of variable v.
func NegLiteral(v Var) Literal {
	return -Literal(v)
}

// LiteralFromDIMACS converts a signed DIMACS literal into its internal
// representation. n must be nonzero.
func LiteralFromDIMACS(n int) Literal {
	return Literal(n)
}

// DIMACS converts a literal back to its external signed-integer form. The
// round trip LiteralFromDIMACS(l.DIMACS()) == l holds for every l.
func (l Literal) DIMACS() int {
	return int(l)
}

// Var returns the variable this literal refers to.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPositive reports whether l is the positive literal of its variable.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Complement returns the negation of l. It is its own inverse.
func (l Literal) Complement() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}
