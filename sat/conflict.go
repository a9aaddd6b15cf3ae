package sat

// repairConflict runs DPLL-style backtrack-and-flip conflict repair,
// re-expressed as clause learning: a conflict at decision level d learns a
// clause over the negations of the d active decisions, then backjumps to
// d-1 and flips what was the decision at d into a forced consequence of the
// now-current level.
//
// It reports UNSAT (by returning true) only when the conflict occurs at
// level 0, where there is nothing left to backtrack past.
func (s *Solver) repairConflict() bool {
	s.stats.Conflicts++
	d := s.currentLevel

	if d == 0 {
		s.unsat = true
		return true
	}

	if d > 1 {
		lits := make([]Literal, d)
		for level := 1; level <= d; level++ {
			lits[d-level] = s.decisionLits[level].Complement()
		}
		c := newClause(lits, true)
		s.learned = append(s.learned, c)
		s.watchClause(c)
		for _, l := range lits {
			s.numActive[s.idx(l)]++
		}
	}

	abandoned := s.decisionLits[d]
	s.backtrack(d - 1)
	s.enqueue(abandoned.Complement(), conflictFlipKind, d-1)
	return false
}
