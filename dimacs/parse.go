// Package dimacs reads DIMACS CNF files into a sat.Solver. It owns the
// header's two degenerate cases — an empty formula and a formula over zero
// variables — which the core itself has no notion of (see Outcome): a
// formula with zero clauses is SAT on its header alone, and this is checked
// first, so "p cnf 0 0" is SAT; otherwise a formula with zero variables is
// UNSAT on its header alone (every clause it could contain is necessarily
// empty).
package dimacs

import (
	"compress/gzip"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"
	"github.com/pkg/errors"

	"github.com/cdclsolver/cdcl/sat"
)

// Outcome reports whether the header alone settled the result.
type Outcome int

const (
	// OutcomeSolve means a Solver was built; call Solve on it.
	OutcomeSolve Outcome = iota
	OutcomeSAT
	OutcomeUNSAT
)

// Parse reads a DIMACS CNF file, optionally gzip-compressed, and returns a
// ready-to-solve Solver with every clause already added. If the header
// alone settles the outcome, no Solver is built and Outcome reports which
// way it went.
func Parse(filename string, gzipped bool) (*sat.Solver, Outcome, error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return nil, OutcomeSolve, errors.Wrapf(sat.ErrIO, "opening %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, OutcomeSolve, errors.Wrapf(sat.ErrBadInput, "parsing %q: %s", filename, err)
	}
	if b.err != nil {
		return nil, OutcomeSolve, b.err
	}

	switch {
	case b.numClauses == 0:
		return nil, OutcomeSAT, nil
	case b.numVars == 0:
		return nil, OutcomeUNSAT, nil
	}
	return b.solver, OutcomeSolve, nil
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(f)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// builder adapts the external DIMACS reader's callback protocol onto a
// sat.Solver.
type builder struct {
	solver     *sat.Solver
	numVars    int
	numClauses int
	err        error
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return errors.Wrapf(sat.ErrBadInput, "unsupported problem type %q", problem)
	}
	b.numVars = nVars
	b.numClauses = nClauses
	if nClauses == 0 || nVars == 0 {
		// Settled by the header alone; no solver is needed and any clause
		// lines that follow are ignored.
		return nil
	}
	solver, err := sat.NewSolver(nVars)
	if err != nil {
		return err
	}
	b.solver = solver
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if len(tmpClause) == 0 {
		if b.solver != nil {
			return b.solver.AddClause(nil)
		}
		return nil
	}
	if b.solver == nil {
		return nil
	}
	lits := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		lits[i] = sat.LiteralFromDIMACS(l)
	}
	return b.solver.AddClause(lits)
}

func (b *builder) Comment(_ string) error {
	return nil
}
