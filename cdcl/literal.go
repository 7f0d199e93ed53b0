package cdcl

import "fmt"

// VarID identifies a variable. Valid variable IDs range from 1 to the
// formula's variable count, inclusive (spec data model §3: "Identified
// by a positive integer 1…N").
type VarID int

// ClauseID identifies a clause. Original clauses are numbered 1..M in
// input order; learned clauses continue the sequence M+1, M+2, ... A
// ClauseID of 0 means "no clause" (used for a free or decided
// variable's antecedent).
type ClauseID int

// LitID identifies a literal: a variable together with a polarity. The
// variable ID and polarity are packed into a single int so that flipping
// a literal's polarity (Opposite) is one XOR, the same trick the
// teacher's Literal type uses.
type LitID int

// literalOf returns the LitID for variable v with the given polarity.
func literalOf(v VarID, positive bool) LitID {
	if positive {
		return LitID(v) << 1
	}
	return LitID(v)<<1 | 1
}

// LiteralOf returns the literal for a signed DIMACS-style index: a
// positive index produces the true-polarity literal of that variable, a
// negative index the false-polarity literal (spec §4.1: "literal_of
// (signed_index) (positive → true-polarity, negative → false-polarity)").
// The zero index is invalid and must not be passed.
func LiteralOf(signed int) LitID {
	if signed > 0 {
		return literalOf(VarID(signed), true)
	}
	return literalOf(VarID(-signed), false)
}

// VarID returns the variable referenced by l.
func (l LitID) VarID() VarID {
	return VarID(l >> 1)
}

// IsPositive reports whether l asserts its variable true.
func (l LitID) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the literal for the same variable with the opposite
// polarity (spec §4.1: "literal_of(-i) == flip(literal_of(i))").
func (l LitID) Opposite() LitID {
	return l ^ 1
}

// SignedIndex returns l as a DIMACS-style signed integer: positive for
// the true-polarity literal, negative for the false-polarity literal.
func (l LitID) SignedIndex() int {
	if l.IsPositive() {
		return int(l.VarID())
	}
	return -int(l.VarID())
}

func (l LitID) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}
