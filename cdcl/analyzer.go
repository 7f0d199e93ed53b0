package cdcl

// noPivot is a LitID that can never equal a real literal (the smallest
// real LitID is literalOf(1, true) == 2, since variable 0 is unused), so
// it is safe to use as a "no literal to exclude" sentinel.
const noPivot LitID = 0

// analyze implements the rank-driven first-UIP algorithm of spec §4.5.
// Given the clause that caused the most recent BCP failure, it derives
// an asserting learned clause and that clause's assertion level.
//
// The algorithm maintains, conceptually, two sets: Q, the literals still
// at the conflict level awaiting resolution, and R, the literals at
// strictly lower levels that will form the clause's reason side. Rather
// than keeping Q as an explicit set, it tracks |Q| as a count
// (nImplicationPoints) and relies on the trail already being in rank
// order: because every assignment at the conflict level sits after every
// assignment at a lower level, walking the trail backward visits Q's
// members (highest rank first) before it can reach any R member, so the
// next literal to resolve is always just the next seen variable
// encountered.
func (s *State) analyze(conflict *Clause) ([]LitID, int) {
	level := s.trail.CurrentLevel()

	s.seen.Clear()
	learned := make([]LitID, 1) // learned[0] is filled in with the FUIP at the end
	backtrackLevel := 1
	nImplicationPoints := 0

	c := conflict
	pivot := noPivot
	trailIdx := s.trail.Len() - 1
	var l LitID

	for {
		for _, lit := range c.literals {
			if lit == pivot {
				continue // the literal this clause explains; not a cause
			}
			v := lit.VarID()
			if s.seen.Contains(v) {
				continue // already routed into Q or R
			}
			s.seen.Add(v)

			if s.formula.VariableOf(v).level == level {
				nImplicationPoints++
				continue
			}
			// lit is already false under the current assignment (that's
			// why c was unit or conflicting on it), which is exactly the
			// form a resolvent needs: no flip.
			learned = append(learned, lit)
			if lvl := s.formula.VariableOf(v).level; lvl > backtrackLevel {
				backtrackLevel = lvl
			}
		}

		// Find the next seen literal walking the trail backward. Rank
		// order guarantees this is the highest-ranked outstanding Q
		// member, i.e. the literal first-UIP analysis must resolve next.
		for {
			l = s.trail.entries[trailIdx]
			trailIdx--
			if s.seen.Contains(l.VarID()) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break // l is the sole remaining conflict-level literal: the FUIP
		}

		v := s.formula.VariableOf(l.VarID())
		ante := v.antecedent
		if ante == 0 {
			// Spec §9 open question: the queue reduced to a decision
			// literal while more than one literal remains at the
			// conflict level. The implication graph invariants (spec §8
			// #2) make this unreachable; surface it loudly rather than
			// silently deriving a wrong clause.
			panic("cdcl: analyzer reached a decision literal while more than one literal remains at the conflict level")
		}
		c = s.formula.ClauseOf(ante)
		pivot = l
	}

	learned[0] = l.Opposite()
	return learned, backtrackLevel
}
