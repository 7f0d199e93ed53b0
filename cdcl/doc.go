// Package cdcl implements the state engine of a conflict-driven clause
// learning SAT solver: the trail, unit propagation (BCP), and conflict
// analysis needed by an external search driver.
//
// The package deliberately stops short of a full solver. It does not
// choose which literal to decide, does not restart, does not delete
// learned clauses, and does not save phases or track variable activity.
// Those concerns belong to a driver built on top of State; see
// cmd/cdclsolve for a minimal example.
package cdcl
