// Command cdclsolve is a minimal DPLL/CDCL search driver built on top of
// the cdcl package. The core package deliberately has no opinion on
// decision heuristics or restart policy; this command supplies both so the
// state engine can be exercised end to end against real DIMACS instances.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kr/pretty"

	"github.com/satcore-go/cdclcore/cdcl"
	"github.com/satcore-go/cdclcore/dimacs"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagGzip = flag.Bool(
	"gz",
	false,
	"treat the instance file as gzip-compressed",
)

var flagVerbose = flag.Bool(
	"v",
	false,
	"print every learned clause as it is derived",
)

var flagDecay = flag.Float64(
	"decay",
	0.95,
	"VSIDS score decay factor, in (0, 1]",
)

var flagRestartEvery = flag.Int(
	"restart-every",
	100,
	"restart the search every N conflicts (0 disables restarts)",
)

type config struct {
	instanceFile string
	gzipped      bool
	verbose      bool
	decay        float64
	restartEvery int
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		verbose:      *flagVerbose,
		decay:        *flagDecay,
		restartEvery: *flagRestartEvery,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

// status mirrors the three outcomes a search driver reports for an
// instance; the cdcl package itself never classifies a run this way, since
// it has no notion of exhausting the search.
type status int

const (
	unknown status = iota
	sat
	unsat
)

func (st status) String() string {
	switch st {
	case sat:
		return "SATISFIABLE"
	case unsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

func run(cfg *config) (status, int, error) {
	s, err := dimacs.Load(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return unknown, 0, fmt.Errorf("could not load instance: %w", err)
	}

	if s.ConflictReason() != nil {
		return unsat, 0, nil
	}

	order := newVarOrder(s.NumVariables(), cfg.decay)
	conflicts := 0

	for {
		if s.IsSatisfied() {
			return sat, conflicts, nil
		}

		l, ok := order.next(s)
		if !ok {
			// Every variable is assigned but the formula isn't satisfied:
			// cannot happen if IsSatisfied and the order are consistent,
			// but report UNKNOWN rather than loop forever.
			return unknown, conflicts, nil
		}

		learned := s.Decide(l)
		for learned != nil {
			conflicts++
			order.decay()
			for _, lit := range learned.Literals() {
				order.bump(lit.VarID())
			}
			if cfg.verbose {
				fmt.Fprintf(os.Stderr, "c learned: %s\n", pretty.Sprint(learned))
			}

			if s.Trail().CurrentLevel() == 1 {
				// Conflict persists with no decision left to undo: the
				// formula is unsatisfiable.
				return unsat, conflicts, nil
			}

			for !s.AtAssertionLevel(learned) {
				undoAndReinsert(s, order)
			}
			learned = s.AssertClause(learned)

			if learned == nil && cfg.restartEvery > 0 && conflicts%cfg.restartEvery == 0 {
				for s.Trail().CurrentLevel() > 1 {
					undoAndReinsert(s, order)
				}
				break
			}
		}
	}
}

// undoAndReinsert undoes the current decision level and returns every
// variable it frees to the candidate order, phase-saved.
func undoAndReinsert(s *cdcl.State, order *varOrder) {
	level := s.Trail().CurrentLevel()
	var atLevel []cdcl.LitID
	for _, l := range s.Trail().Literals() {
		if v := s.Formula().VariableOf(l.VarID()); v.Level() == level {
			atLevel = append(atLevel, l)
		}
	}

	s.UndoDecide()

	for _, l := range atLevel {
		order.reinsert(l.VarID(), cdcl.Lift(l.IsPositive()))
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	t := time.Now()
	st, conflicts, err := run(cfg)
	elapsed := time.Since(t)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", conflicts, float64(conflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", st)
}
