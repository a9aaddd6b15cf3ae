package sat

import "strings"

// Clause is an ordered list of literals. Positions 0 and 1 are, by
// convention, the clause's two watched literals; the propagator swaps
// literals into and out of those two positions but never reorders the rest.
//
// extinct marks a clause that has been proven permanently satisfied (one of
// its literals is DECEASED and true). Watch lists are not scrubbed eagerly
// when a clause goes extinct — only the slot being rebuilt by the current
// propagator step is dropped. Any other watch list still holding a stale
// pointer to the clause recognizes it as dead via this flag and skips it on
// next visit. This is the Go-idiomatic equivalent of the "store a null
// sentinel in every watch list" rule: one flag, checked lazily, instead of
// chasing down every other list synchronously.
type Clause struct {
	literals []Literal
	learnt   bool
	extinct  bool
}

func newClause(lits []Literal, learnt bool) *Clause {
	c := &Clause{
		literals: make([]Literal, len(lits)),
		learnt:   learnt,
	}
	copy(c.literals, lits)
	return c
}

// Width returns the number of literals still in the clause.
func (c *Clause) Width() int {
	return len(c.literals)
}

// Literals returns the clause's literals. Positions 0 and 1 are the watched
// literals. Callers must not retain the returned slice across a propagator
// step: the propagator mutates it in place.
func (c *Clause) Literals() []Literal {
	return c.literals
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
