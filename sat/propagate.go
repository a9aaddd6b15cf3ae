package sat

// propagate drains the trail from head to tail, one entry at a time. It
// returns true on CONFLICT, in which case head is left pointing at the
// literal whose watch-list scan found the contradiction and that literal's
// watch list has been fully rebuilt (I2 holds). It returns false once
// head == tail with no conflict.
func (s *Solver) propagate() bool {
	for s.head < s.tail {
		lit := s.headLiteral()
		s.activate(lit)

		idx := s.idx(lit)
		w := s.watchList[idx]
		s.watchList[idx] = nil
		next := make([]*Clause, 0, len(w))

		conflict := false
		for i := 0; i < len(w); i++ {
			c := w[i]
			if c == nil || c.extinct {
				continue
			}
			lits := c.literals
			comp := lit.Complement()
			if lits[0] != comp {
				lits[0], lits[1] = lits[1], lits[0]
			}
			other := lits[1]

			// A level-0 other is permanent, but it can still be the false
			// half of a just-derived conflict if it was only just enqueued
			// within this same propagate call (not yet promoted past
			// PENDING) — so both conditions are checked, not level alone.
			if s.levelOf(other) == 0 && s.isTrue(other) {
				s.extinguish(c)
				continue
			}
			if s.statusOf(other) == active && s.isTrue(other) {
				next = append(next, c)
				continue
			}

			replaced := false
			for k := 2; k < len(lits); k++ {
				cand := lits[k]
				switch {
				case s.statusOf(cand) == deceased && s.isTrue(cand):
					s.extinguish(c)
					replaced = true
				case s.statusOf(cand) == pending || s.statusOf(cand) == available ||
					(s.statusOf(cand) == active && s.isTrue(cand)):
					lits[0], lits[k] = lits[k], lits[0]
					ci := s.idx(lits[0].Complement())
					s.watchList[ci] = append(s.watchList[ci], c)
					replaced = true
				}
				if replaced {
					break
				}
			}
			if replaced {
				continue
			}

			// Unit with respect to other.
			next = append(next, c)
			switch {
			case s.statusOf(other) == available:
				s.enqueue(other, propagationKind, s.currentLevel)
				s.stats.Propagations++
			case !s.isTrue(other):
				// Already false (ACTIVE or DECEASED with no replacement found),
				// or PENDING and certain to resolve false: both watches of c
				// are false. Copy the rest of the unprocessed watch list
				// across unchanged and report the conflict.
				for j := i + 1; j < len(w); j++ {
					next = append(next, w[j])
				}
				conflict = true
			}
			if conflict {
				break
			}
		}

		s.watchList[idx] = next
		if conflict {
			s.Log.WithField("literal", lit).Trace("propagation conflict")
			return true
		}
		s.head++
	}
	return false
}

// extinguish marks c permanently satisfied. Its slot in the watch list being
// rebuilt is simply omitted by the caller; other watch lists still holding
// a stale pointer to c recognize it as dead via the extinct flag and skip
// it the next time they visit it.
func (s *Solver) extinguish(c *Clause) {
	c.extinct = true
	for _, l := range c.literals {
		s.numActive[s.idx(l)]--
	}
}
