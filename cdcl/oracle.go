package cdcl

// This file is the status oracle described in spec §4.2. Given a clause
// and the current assignment, it derives the two counts every other
// component (BCP, the analyzer, the irrelevance query) is built on.
// Counts are recomputed on demand rather than cached: per spec's design
// notes, the source's attempt at persistent per-clause counters drifted
// out of sync with the trail, and a clause's size is small enough that
// a linear scan is cheap.

// SatisfiedCount returns the number of c's literals that are currently
// true.
func SatisfiedCount(f *Formula, c *Clause) int {
	n := 0
	for _, l := range c.literals {
		if f.LiteralValue(l) == True {
			n++
		}
	}
	return n
}

// FreeCount returns the number of c's literals whose variable is
// currently unassigned.
func FreeCount(f *Formula, c *Clause) int {
	n := 0
	for _, l := range c.literals {
		if f.LiteralValue(l) == Unknown {
			n++
		}
	}
	return n
}

// ClauseIsSatisfied reports whether at least one literal of c is true.
func ClauseIsSatisfied(f *Formula, c *Clause) bool {
	return SatisfiedCount(f, c) > 0
}

// ClauseIsConflicting reports whether every literal of c is false.
func ClauseIsConflicting(f *Formula, c *Clause) bool {
	return SatisfiedCount(f, c) == 0 && FreeCount(f, c) == 0
}

// ClauseIsUnit reports whether c has no satisfied literal and exactly
// one free literal.
func ClauseIsUnit(f *Formula, c *Clause) bool {
	return SatisfiedCount(f, c) == 0 && FreeCount(f, c) == 1
}

// AssertedLiteral returns the single free literal of a unit clause. The
// caller must ensure ClauseIsUnit(f, c) holds; this is the literal unit
// resolution is about to force true.
func AssertedLiteral(f *Formula, c *Clause) LitID {
	if !ClauseIsUnit(f, c) {
		panic("cdcl: AssertedLiteral called on a clause that is not unit")
	}
	for _, l := range c.literals {
		if f.LiteralValue(l) == Unknown {
			return l
		}
	}
	panic("cdcl: AssertedLiteral called on a clause that is not unit")
}
