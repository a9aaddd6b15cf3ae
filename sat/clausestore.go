package sat

// AddClause adds one input clause to the formula. It must be called before
// Solve; it is not safe to call once the search has begun.
//
// A width-0 clause proves the formula UNSAT outright (latched on s.unsat; no
// error is raised — an empty clause is a valid, if degenerate, CNF formula,
// not malformed input). A width-1 clause is not stored: its literal is
// enqueued directly at decision level 0, matching the contract that unit
// input clauses become initial propagations rather than watched clauses.
// Width 2 and above are stored and watched on their first two literals.
func (s *Solver) AddClause(lits []Literal) error {
	switch len(lits) {
	case 0:
		s.unsat = true
		return nil
	case 1:
		s.addUnit(lits[0])
		return nil
	default:
		c := newClause(lits, false)
		s.clauses = append(s.clauses, c)
		s.watchClause(c)
		for _, l := range lits {
			s.numActive[s.idx(l)]++
		}
		return nil
	}
}

// addUnit enqueues a top-level unit literal at decision level 0. Two unit
// clauses over the same variable are either duplicates (the second is a
// no-op) or directly contradictory, in which case the formula is UNSAT at
// level 0 — the same verdict conflict repair would reach were this routed
// through the propagator, just detected a step earlier since no watched
// clause exists to carry it there. This only works because enqueue fixes
// the variable's value immediately (see enqueue's comment): a second unit
// clause over the same variable can read that value straight off, before
// the propagator has ever touched it.
func (s *Solver) addUnit(lit Literal) {
	v := lit.Var() - 1
	if s.status[v] == available {
		s.enqueue(lit, propagationKind, 0)
		s.stats.Propagations++
		return
	}
	if !s.isTrue(lit) {
		s.unsat = true
	}
}

// watchClause registers c under the watch lists of the complements of its
// two watched literals (I2). Called once at construction and again for
// every freshly learned clause.
func (s *Solver) watchClause(c *Clause) {
	for _, w := range c.literals[:2] {
		i := s.idx(w.Complement())
		s.watchList[i] = append(s.watchList[i], c)
	}
}
