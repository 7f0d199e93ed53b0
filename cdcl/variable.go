package cdcl

// VarStatus is the assignment status of a variable (spec §3: "current
// assignment status ∈ {free, true, false, conflicted}").
type VarStatus int8

const (
	StatusFree VarStatus = iota
	StatusTrue
	StatusFalse

	// StatusConflicted mirrors the fourth status the original C API
	// reserves for a variable whose positive and negative literals are
	// both marked implied (satapi.h's "conflicting" = implied_pos |
	// implied_neg). Ordinary BCP and undo only ever move a variable
	// between Free, True and False; this value is kept so Variable's
	// status space matches the data model in full, but the engine never
	// produces it (see DESIGN.md's note on spec §9's open question about
	// this status).
	StatusConflicted
)

func (s VarStatus) String() string {
	switch s {
	case StatusFree:
		return "free"
	case StatusTrue:
		return "true"
	case StatusFalse:
		return "false"
	case StatusConflicted:
		return "conflicted"
	default:
		return "invalid"
	}
}

// Variable is a CNF variable together with its current assignment
// state: status, decision level, rank, antecedent and mark bit (spec
// §3).
type Variable struct {
	id     VarID
	status VarStatus

	// level is the decision level at which the variable was assigned, or
	// -1 if it is currently free.
	level int

	// rank is the position in the trail at which the variable was most
	// recently assigned, or -1 if free. Ranks are issued strictly in
	// assignment order: undoing an assignment simply truncates the
	// trail, which "releases" its rank for the next assignment to take.
	rank int

	// antecedent is the clause that forced this variable's assignment by
	// unit resolution, or 0 if the variable is free or was decided.
	antecedent ClauseID

	mark bool

	// origOccurrences lists, by ID, the original clauses that mention
	// either polarity of this variable. Learned clauses never appear
	// here (spec §4.1: "learned clauses are not counted as original
	// occurrences").
	origOccurrences []ClauseID
}

// ID returns the variable's index.
func (v *Variable) ID() VarID { return v.id }

// Status returns the variable's current assignment status.
func (v *Variable) Status() VarStatus { return v.status }

// Level returns the decision level at which the variable was assigned,
// or -1 if it is free.
func (v *Variable) Level() int { return v.level }

// Rank returns the trail position at which the variable was assigned,
// or -1 if it is free.
func (v *Variable) Rank() int { return v.rank }

// Antecedent returns the clause that forced the variable's assignment by
// unit resolution, or 0 if it is free or was decided.
func (v *Variable) Antecedent() ClauseID { return v.antecedent }

// Mark reports the variable's opaque mark bit, reserved for external use
// (spec §3; satapi.h sat_marked_var).
func (v *Variable) Mark() bool { return v.mark }

// IsAssigned reports whether the variable currently has a value.
func (v *Variable) IsAssigned() bool { return v.status != StatusFree }

// OccurrenceCount returns the number of original clauses mentioning
// either polarity of the variable.
func (v *Variable) OccurrenceCount() int { return len(v.origOccurrences) }
