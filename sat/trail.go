package sat

// enqueue places lit at the tail of the trail and marks both it and its
// complement PENDING. It requires lit's variable to be AVAILABLE; callers
// that are not sure this holds (top-level unit clauses, in particular) must
// check first and route an already-contradicted literal to conflict
// handling instead of calling enqueue.
//
// The truth value is fixed here, not deferred to activate: a literal still
// queued behind the trail head can already be the "other" watch of some
// clause currently being scanned, and that scan needs to tell a pending
// literal agreeing with lit apart from one that would contradict it (see
// propagate's unit-clause step). Only the status/level promotion to
// ACTIVE/DECEASED waits for the propagator to actually reach the entry.
func (s *Solver) enqueue(lit Literal, kind assignKind, level int) {
	v := lit.Var() - 1
	s.status[v] = pending
	s.kind[v] = kind
	s.level[v] = level
	if lit.IsPositive() {
		s.value[v] = True
	} else {
		s.value[v] = False
	}
	s.trail = append(s.trail, lit)
	s.tail++
}

// activate promotes lit's variable from PENDING to ACTIVE (or DECEASED at
// level 0); its truth value was already fixed when it was enqueued. It does
// not move head: advancing past the entry is the propagator's job, done
// only once the entry's whole watch list has been scanned without conflict.
func (s *Solver) activate(lit Literal) {
	v := lit.Var() - 1
	if s.level[v] == 0 {
		s.status[v] = deceased
	} else {
		s.status[v] = active
	}
}

// backtrack unassigns every trail entry whose decision level exceeds
// newLevel — including any still-PENDING suffix beyond head that a
// conflict left unprocessed — and resets head/tail to the new trail end.
// The decision literal of the abandoned level is not recovered from the
// trail (it has just been popped); callers read it from decisionLits
// before calling backtrack.
func (s *Solver) backtrack(newLevel int) {
	for len(s.trail) > 0 {
		lit := s.trail[len(s.trail)-1]
		v := lit.Var() - 1
		if s.level[v] <= newLevel {
			break
		}
		s.status[v] = available
		s.level[v] = unassignedLevel
		s.kind[v] = noKind
		s.value[v] = Unknown
		s.trail = s.trail[:len(s.trail)-1]
	}
	s.head = len(s.trail)
	s.tail = len(s.trail)
	s.decisionLits = s.decisionLits[:newLevel+1]
	s.currentLevel = newLevel
}

// headLiteral returns the literal currently at the trail head, the one the
// propagator is about to consume.
func (s *Solver) headLiteral() Literal {
	return s.trail[s.head]
}
