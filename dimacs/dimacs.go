// Package dimacs loads a CNF formula in DIMACS format into a ready-to-run
// cdcl.State.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/satcore-go/cdclcore/cdcl"
)

// Load reads the DIMACS CNF file at filename and returns a cdcl.State
// seeded with its clauses. gzipped selects whether the file should be
// decompressed on the way in, matching instance sets that ship as .cnf.gz.
func Load(filename string, gzipped bool) (*cdcl.State, error) {
	rc, err := open(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer rc.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(dropTerminatorLines(rc), b); err != nil {
		return nil, fmt.Errorf("dimacs: parsing %q: %w", filename, err)
	}
	if b.formula == nil {
		return nil, fmt.Errorf("dimacs: %q has no problem line", filename)
	}
	return cdcl.NewState(b.formula), nil
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipReadCloser{gz: gz, file: f}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fileErr := g.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}

// dropTerminatorLines filters out trailing terminator lines — a bare '%'
// end-of-file marker, or a bare '0' line — left over after the header's
// declared clause count has already been satisfied (spec §6: "Lines
// beginning with % or 0 are terminators; ignored"). github.com/rhartert/dimacs
// does not special-case either: it treats any non-blank line not starting
// with 'c' or 'p' as a clause line, counted against the problem line's M,
// so a trailing '%' or '0' left in place after the last real clause makes
// it fail with "too many clauses" rather than being ignored. This mirrors
// the teacher's own `for nClauses > 0 && scanner.Scan()` bound
// (internal/dimacs/dimacs.go) by counting clause lines itself and
// dropping anything beyond the declared count, rather than special-casing
// '%'/'0' unconditionally — a bare '0' line that is itself one of the
// declared clauses (an empty clause) still passes through so
// builder.Clause can drop it as a clause, not silently vanish the count.
func dropTerminatorLines(r io.Reader) io.Reader {
	scanner := bufio.NewScanner(r)
	var sb strings.Builder

	foundProblem := false
	nClauses := 0
	parsedClauses := 0

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			sb.WriteString(line)
			sb.WriteByte('\n')
		case trimmed[0] == 'c':
			sb.WriteString(line)
			sb.WriteByte('\n')
		case trimmed[0] == 'p':
			if !foundProblem {
				foundProblem = true
				nClauses = parseNClauses(trimmed)
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		default:
			if foundProblem && parsedClauses >= nClauses {
				continue // trailing '%'/'0'/junk past the declared clause count
			}
			parsedClauses++
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return strings.NewReader(sb.String())
}

// parseNClauses extracts M from a "p cnf N M" problem line. It returns 0
// (matching no clauses declared, so every later default line is treated
// as a trailer) if the line is malformed; the real parse error still
// surfaces from dimacs.ReadBuilder once it sees the same line.
func parseNClauses(problemLine string) int {
	parts := strings.Fields(problemLine)
	if len(parts) != 4 || parts[1] != "cnf" {
		return 0
	}
	n, err := strconv.Atoi(parts[3])
	if err != nil {
		return 0
	}
	return n
}

// builder adapts github.com/rhartert/dimacs's callback-based parser into a
// cdcl.Formula under construction.
type builder struct {
	formula *cdcl.Formula
}

func (b *builder) Problem(nVars, nClauses int) {
	b.formula = cdcl.NewFormula(nVars)
}

func (b *builder) Clause(tmpClause []int) {
	if len(tmpClause) == 0 {
		// Empty clauses are a DIMACS artifact (e.g. a bare "0" line) rather
		// than a real constraint; the spec calls for silently dropping them.
		return
	}
	lits := make([]cdcl.LitID, len(tmpClause))
	for i, l := range tmpClause {
		lits[i] = cdcl.LiteralOf(l)
	}
	b.formula.AddClause(lits)
}

func (b *builder) Comment(string) {}
