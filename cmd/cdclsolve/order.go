package main

import (
	"github.com/rhartert/yagh"

	"github.com/satcore-go/cdclcore/cdcl"
)

// varOrder picks which free variable cdclsolve decides next and which
// polarity to try first. It has no counterpart in the cdcl package itself:
// the core state engine is deliberately silent on decision heuristics,
// leaving this entirely to the driver.
//
// Activity bumping follows the VSIDS scheme: every variable touched by a
// freshly learned clause has its score bumped, and scores periodically
// decay so that recent conflicts matter more than old ones. The candidate
// set is a priority queue keyed on negated score so that Pop returns the
// highest-scoring free variable first.
type varOrder struct {
	order *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	phases []cdcl.LBool
}

func newVarOrder(nVars int, decay float64) *varOrder {
	vo := &varOrder{
		order:      yagh.New[float64](0),
		scores:     make([]float64, nVars+1),
		scoreInc:   1,
		scoreDecay: decay,
		phases:     make([]cdcl.LBool, nVars+1),
	}
	vo.order.GrowBy(nVars + 1)
	for v := 1; v <= nVars; v++ {
		vo.order.Put(v, 0)
	}
	return vo
}

// bump increases v's score, rescaling every score if it has grown too
// large to keep relative ordering stable.
func (vo *varOrder) bump(v cdcl.VarID) {
	i := int(v)
	vo.scores[i] += vo.scoreInc
	if vo.order.Contains(i) {
		vo.order.Put(i, -vo.scores[i])
	}
	if vo.scores[i] > 1e100 {
		vo.rescale()
	}
}

// decay grows the weight future bumps count for relative to past ones,
// which is equivalent to decaying every existing score.
func (vo *varOrder) decay() {
	vo.scoreInc /= vo.scoreDecay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

func (vo *varOrder) rescale() {
	vo.scoreInc *= 1e-100
	for v, s := range vo.scores {
		vo.scores[v] = s * 1e-100
		if vo.order.Contains(v) {
			vo.order.Put(v, -vo.scores[v])
		}
	}
}

// reinsert makes v a candidate again, remembering its prior polarity for
// phase saving.
func (vo *varOrder) reinsert(v cdcl.VarID, was cdcl.LBool) {
	vo.phases[v] = was
	vo.order.Put(int(v), -vo.scores[v])
}

// next pops the highest-scoring free variable and returns the literal to
// decide, preferring the phase it held the last time it was unassigned.
func (vo *varOrder) next(s *cdcl.State) (cdcl.LitID, bool) {
	for {
		item, ok := vo.order.Pop()
		if !ok {
			return 0, false
		}
		v := cdcl.VarID(item.Elem)
		if s.VariableIsAssigned(v) {
			continue
		}
		positive := vo.phases[v] != cdcl.False
		return cdcl.LiteralOf(signedIndex(v, positive)), true
	}
}

func signedIndex(v cdcl.VarID, positive bool) int {
	if positive {
		return int(v)
	}
	return -int(v)
}
