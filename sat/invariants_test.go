package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWatchCoverage checks invariant I2/P2: every non-extinct clause is
// registered in the watch lists of the complements of its two watched
// literals.
func TestWatchCoverage(t *testing.T) {
	s := build(t, 3, [][]int{{1, 2, 3}})
	c := s.clauses[0]

	found0, found1 := false, false
	for _, w := range s.watchList[s.idx(c.literals[0].Complement())] {
		if w == c {
			found0 = true
		}
	}
	for _, w := range s.watchList[s.idx(c.literals[1].Complement())] {
		if w == c {
			found1 = true
		}
	}
	require.True(t, found0, "clause not registered under complement of watched literal 0")
	require.True(t, found1, "clause not registered under complement of watched literal 1")
}

// TestBacktrackIdempotence checks P6: backtracking twice to the same level
// is the same as backtracking once.
func TestBacktrackIdempotence(t *testing.T) {
	s := build(t, 2, [][]int{{1, 2}, {-1, 2}, {1, -2}})
	s.currentLevel = 1
	lit := PosLiteral(1)
	s.decisionLits = append(s.decisionLits, lit)
	s.enqueue(lit, decisionKind, 1)
	require.False(t, s.propagate(), "unexpected conflict")

	s.backtrack(0)
	snapshotLevels := append([]int(nil), s.level...)
	snapshotStatus := append([]status(nil), s.status...)

	s.backtrack(0)
	require.Equal(t, snapshotLevels, s.level)
	require.Equal(t, snapshotStatus, s.status)
}

// TestTrailMonotonicity checks I4/P4: decision levels along the trail are
// non-decreasing.
func TestTrailMonotonicity(t *testing.T) {
	s := build(t, 3, [][]int{{1, 2}, {-1, 3}, {-2, -3}})
	_, err := s.Solve()
	require.NoError(t, err)

	prev := -1
	for _, lit := range s.trail {
		lvl := s.levelOf(lit)
		require.GreaterOrEqual(t, lvl, prev)
		prev = lvl
	}
}
