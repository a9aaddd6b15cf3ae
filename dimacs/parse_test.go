package dimacs

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdclsolver/cdcl/sat"
)

func writeFile(t *testing.T, contents string, gzipped bool) string {
	t.Helper()
	dir := t.TempDir()
	name := filepath.Join(dir, "instance.cnf")
	if gzipped {
		name += ".gz"
		f, err := os.Create(name)
		require.NoError(t, err)
		gw := gzip.NewWriter(f)
		_, err = gw.Write([]byte(contents))
		require.NoError(t, err)
		require.NoError(t, gw.Close())
		require.NoError(t, f.Close())
		return name
	}
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
	return name
}

func TestParseSolvesSAT(t *testing.T) {
	name := writeFile(t, "c comment\np cnf 3 3\n1 0\n-1 2 0\n-2 3 0\n", false)
	solver, outcome, err := Parse(name, false)
	require.NoError(t, err)
	require.Equal(t, OutcomeSolve, outcome)

	result, err := solver.Solve()
	require.NoError(t, err)
	require.Equal(t, sat.SAT, result)
}

func TestParseGzipped(t *testing.T) {
	name := writeFile(t, "p cnf 1 1\n1 0\n", true)
	solver, outcome, err := Parse(name, true)
	require.NoError(t, err)
	require.Equal(t, OutcomeSolve, outcome)
	result, err := solver.Solve()
	require.NoError(t, err)
	require.Equal(t, sat.SAT, result)
}

func TestParseEmptyFormulaIsSAT(t *testing.T) {
	name := writeFile(t, "p cnf 0 0\n", false)
	solver, outcome, err := Parse(name, false)
	require.NoError(t, err)
	require.Nil(t, solver)
	require.Equal(t, OutcomeSAT, outcome)
}

func TestParseZeroVariablesWithClausesIsUNSAT(t *testing.T) {
	name := writeFile(t, "p cnf 0 1\n0\n", false)
	solver, outcome, err := Parse(name, false)
	require.NoError(t, err)
	require.Nil(t, solver)
	require.Equal(t, OutcomeUNSAT, outcome)
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := Parse("/nonexistent/path.cnf", false)
	require.Error(t, err)
	require.ErrorIs(t, err, sat.ErrIO)
}

func TestParseWidthZeroClauseIsUNSAT(t *testing.T) {
	name := writeFile(t, "p cnf 2 2\n1 2 0\n0\n", false)
	solver, outcome, err := Parse(name, false)
	require.NoError(t, err)
	require.Equal(t, OutcomeSolve, outcome)
	result, err := solver.Solve()
	require.NoError(t, err)
	require.Equal(t, sat.UNSAT, result)
}
