// Package sat implements a conflict-driven clause learning SAT solver core:
// a watched-literal unit-propagation engine, an assignment trail, and a
// DPLL-style backtrack-and-flip conflict repair loop. It deliberately omits
// VSIDS, phase saving, restarts, clause-database reduction and first-UIP
// learning; the decision order is always the lowest-indexed available
// variable.
package sat

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Solver owns every store the search touches: the assignment table, the
// trail, the original and learned clause stores, and the running
// statistics. There is exactly one Solver per formula; it is not safe for
// concurrent use and has no suspension points.
type Solver struct {
	numVars int

	// Per-variable records, indexed by Var-1. status, level and kind are
	// shared by a variable's two literals (I1); value holds the truth value
	// of the variable's positive literal, so the negative literal's value is
	// its Opposite.
	status []status
	level  []int
	kind   []assignKind
	value  []LBool

	// Per-literal records, indexed by idx(lit): positive literals occupy
	// [0, numVars), negative literals [numVars, 2*numVars), so a literal and
	// its complement always sit exactly numVars apart.
	watchList [][]*Clause
	numActive []int

	// Trail. decisionLits[d] is the decision literal of level d (1-indexed;
	// decisionLits[0] is unused) and is all conflict repair needs to build a
	// learned clause, so no reason pointers are kept per assignment.
	trail        []Literal
	head, tail   int
	currentLevel int
	decisionLits []Literal

	clauses []*Clause
	learned []*Clause

	// unsat is latched once true and never cleared. It is set either by a
	// width-0 input clause or by a conflict discovered at decision level 0.
	unsat bool

	stats Stats

	// Log receives structured tracing of decisions and propagation
	// conflicts. It defaults to a logger with level warn (silent for normal
	// solves). Callers that want a trace raise the level externally.
	Log *logrus.Logger
}

// Stats accumulates the figures the search reports once it halts.
type Stats struct {
	Decisions     int
	Propagations  int
	Conflicts     int
}

// NewSolver allocates a solver for a formula over numVars variables. The
// per-variable records (numVars entries) and the per-literal watch lists and
// counters (2*numVars entries) are sized once, up front; no table resizing
// happens during solve.
func NewSolver(numVars int) (*Solver, error) {
	if numVars < 0 {
		return nil, errors.Wrapf(ErrBadInput, "negative variable count %d", numVars)
	}
	if err := checkVarLimit(numVars); err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	s := &Solver{
		numVars:      numVars,
		status:       make([]status, numVars),
		level:        make([]int, numVars),
		kind:         make([]assignKind, numVars),
		value:        make([]LBool, numVars),
		watchList:    make([][]*Clause, 2*numVars),
		numActive:    make([]int, 2*numVars),
		trail:        make([]Literal, 0, 2*numVars),
		decisionLits: make([]Literal, 1, numVars+1),
		Log:          log,
	}
	for v := 0; v < numVars; v++ {
		s.level[v] = unassignedLevel
	}
	return s, nil
}

// idx maps a literal to its position in the per-literal tables. Positive
// literals occupy [0, numVars); negative literals occupy [numVars, 2*numVars),
// so complement(l) always sits exactly numVars slots from l.
func (s *Solver) idx(l Literal) int {
	v := int(l.Var()) - 1
	if l.IsPositive() {
		return v
	}
	return v + s.numVars
}

func (s *Solver) statusOf(l Literal) status {
	return s.status[l.Var()-1]
}

func (s *Solver) levelOf(l Literal) int {
	return s.level[l.Var()-1]
}

// valueOf returns the current truth value of l, or Unknown if unassigned.
func (s *Solver) valueOf(l Literal) LBool {
	v := s.value[l.Var()-1]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// isTrue reports whether l currently evaluates to true.
func (s *Solver) isTrue(l Literal) bool {
	return s.valueOf(l) == True
}

// isFalse reports whether l currently evaluates to false.
func (s *Solver) isFalse(l Literal) bool {
	return s.valueOf(l) == False
}

// NumVars returns the number of variables the solver was constructed with.
func (s *Solver) NumVars() int {
	return s.numVars
}

// Stats returns a snapshot of the running counters.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Model returns the satisfying assignment after a successful Solve, as a
// slice of length NumVars+1 (index 0 unused) of True/False. Calling Model
// before Solve has reported SAT is meaningless.
func (s *Solver) Model() []LBool {
	m := make([]LBool, s.numVars+1)
	for v := 1; v <= s.numVars; v++ {
		m[v] = s.value[v-1]
	}
	return m
}

func (s *Solver) String() string {
	return fmt.Sprintf("Solver{vars=%d clauses=%d learned=%d level=%d}",
		s.numVars, len(s.clauses), len(s.learned), s.currentLevel)
}
