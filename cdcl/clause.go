package cdcl

import "strings"

// Clause is a CNF clause: a sequence of literals whose order is
// informational only (the clause is semantically a set). It carries a
// unique positive index and an opaque mark bit (spec §3).
type Clause struct {
	id       ClauseID
	literals []LitID
	learned  bool
	mark     bool

	// assertionLevel is meaningful only for learned clauses: the
	// second-highest variable level among its literals (or 1), computed
	// by the analyzer at the moment the clause was derived (spec §4.5).
	// Zero for original clauses, which have no assertion level.
	assertionLevel int
}

// ID returns the clause's unique index: 1..M for original clauses in
// input order, M+1, M+2, ... for learned clauses in the order they were
// derived. A clause fresh out of the analyzer and not yet committed via
// State.AssertClause has an ID of 0.
func (c *Clause) ID() ClauseID { return c.id }

// Learned reports whether c was derived by the analyzer rather than
// present in the original formula.
func (c *Clause) Learned() bool { return c.learned }

// Mark reports the clause's opaque mark bit, reserved for external use
// (spec §3; satapi.h sat_marked_clause).
func (c *Clause) Mark() bool { return c.mark }

// AssertionLevel returns the assertion level computed for a learned
// clause: the decision level the driver must backtrack to before this
// clause can be asserted via State.AssertClause. It is only meaningful
// for learned clauses.
func (c *Clause) AssertionLevel() int { return c.assertionLevel }

// Literals returns c's literals in storage order. The caller must not
// mutate the returned slice.
func (c *Clause) Literals() []LitID { return c.literals }

// Size returns the number of literals in c.
func (c *Clause) Size() int { return len(c.literals) }

// LiteralWeight returns the weight of a literal: always 1.0 in this
// core, reserved for a future weighted model counting extension (spec
// §6).
func LiteralWeight(LitID) float64 { return 1.0 }

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
