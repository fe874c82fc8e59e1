package cdcl

// propagate runs unit propagation (BCP) from the current queueHead to a
// fixed point, or until it finds a conflict. It follows the two-watched-
// literal scheme: when literal l is dequeued as newly true, every clause
// watching ~l (i.e. every clause in watches[l]) must be revisited, since one
// of its watched literals just went false.
func (s *Solver) propagate() *Clause {
	for s.queueHead < len(s.trail) {
		lit := s.trail[s.queueHead]
		s.queueHead++
		s.stats.Propagations++

		ws := s.watches[lit.index()]
		i := 0
	watchLoop:
		for i < len(ws) {
			c := ws[i]

			// Put the newly-false literal (~lit) at c.lits[1].
			if c.lits[0] == lit.Not() {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}

			if s.value(c.lits[0]) == lTrue {
				// Satisfied by the other watch; leave this watch in place.
				i++
				continue
			}

			for k := 2; k < len(c.lits); k++ {
				if s.value(c.lits[k]) != lFalse {
					// Found a replacement watch: move it into slot 1, drop
					// this entry from watches[lit] (swap with the tail),
					// and re-register under its own negation. Don't
					// advance i: the slot just vacated holds the old tail.
					c.lits[1], c.lits[k] = c.lits[k], c.lits[1]

					last := len(ws) - 1
					ws[i] = ws[last]
					ws = ws[:last]
					s.watches[lit.index()] = ws

					s.watch(c.lits[1], c)
					continue watchLoop
				}
			}

			// c.lits[2:] are all false; c.lits[0] is the only candidate.
			if s.value(c.lits[0]) == lFalse {
				return c
			}
			s.enqueue(c.lits[0], c)
			i++
		}
	}
	return nil
}
