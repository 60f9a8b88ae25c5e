package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/flow"
	"github.com/katalvlaran/flowdecomp/format"
	"github.com/katalvlaran/flowdecomp/internal/metrics"
	"github.com/katalvlaran/flowdecomp/verify"
)

// Outcome classifies a scored fixture. The values double as the
// fixtures_total metric label.
type Outcome string

const (
	Valid    Outcome = metrics.OutcomeValid
	Invalid  Outcome = metrics.OutcomeInvalid
	Rejected Outcome = metrics.OutcomeRejected
	Parse    Outcome = metrics.OutcomeParse
	Skipped  Outcome = metrics.OutcomeSkipped
)

// Result is the verdict for one fixture.
type Result struct {
	Fixture Fixture
	Outcome Outcome
	Score   int
	Report  verify.Report // set for Valid and Invalid
	Err     error         // parse, rejection or verification failure
}

// Summary is the outcome of a whole batch.
type Summary struct {
	Results []Result
	Total   int
}

// Runner scores candidate decompositions against fixtures.
//   - Scorer, Limits: passed to verify.
//   - RejectedFixtureScore: awarded when a fixture fails its own constraints.
//   - Out: receives the human-readable narrative (nil ⇒ io.Discard).
//   - Logger: structured log (nil ⇒ no logging).
//   - Metrics: optional collector.
type Runner struct {
	Scorer               verify.Scorer
	Limits               verify.Limits
	RejectedFixtureScore int
	Out                  io.Writer
	Logger               *zap.Logger
	Metrics              *metrics.Collector
}

// NewRunner returns a Runner with the default scorer, limits and rejected
// fixture score.
func NewRunner(out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		Scorer:               verify.DefaultScorer(),
		Limits:               verify.DefaultLimits(),
		RejectedFixtureScore: verify.DefaultBase,
		Out:                  out,
		Logger:               logger,
	}
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}

	return r.Out
}

func (r *Runner) log() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

// Run scores every fixture found by Discover(testDir, outDir) in order.
// Fixtures with a missing truth or candidate are skipped with a message.
// It stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, testDir, outDir string) (*Summary, error) {
	fixtures, err := Discover(testDir, outDir)
	if err != nil {
		return nil, err
	}
	r.log().Info("scoring fixtures", zap.String("test_dir", testDir),
		zap.String("output_dir", outDir), zap.Int("fixtures", len(fixtures)))

	sum := &Summary{Results: make([]Result, 0, len(fixtures))}
	for _, f := range fixtures {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("harness: %w", err)
		}
		res := r.Score(f)
		sum.Results = append(sum.Results, res)
		sum.Total += res.Score
	}
	if r.Metrics != nil {
		r.Metrics.SetScore(sum.Total)
	}

	return sum, nil
}

// Score verifies a single fixture and writes its narrative.
func (r *Runner) Score(f Fixture) Result {
	w := r.out()
	res := r.score(w, f)

	r.log().Info("fixture scored", zap.String("fixture", f.Name),
		zap.String("outcome", string(res.Outcome)), zap.Int("score", res.Score), zap.Error(res.Err))
	if r.Metrics != nil {
		r.Metrics.ObserveFixture(string(res.Outcome))
	}

	return res
}

func (r *Runner) score(w io.Writer, f Fixture) Result {
	res := Result{Fixture: f}

	if !exists(f.Truth) {
		fmt.Fprintf(w, "Truth file %s does not exist. Skipping...\n", f.Truth)
		res.Outcome = Skipped
		return res
	}
	if !exists(f.Output) {
		fmt.Fprintf(w, "Output file %s does not exist. Skipping...\n", f.Output)
		res.Outcome = Skipped
		return res
	}

	fmt.Fprintf(w, "Verifying %s against %s...\n", f.Output, f.Graph)

	net, err := format.LoadNetwork(f.Graph)
	var cand, truth *flow.Decomposition
	if err == nil {
		cand, err = format.LoadDecomposition(f.Output)
	}
	if err == nil {
		truth, err = format.LoadDecomposition(f.Truth)
	}
	if err != nil {
		fmt.Fprintf(w, "FAIL: Parsing Error - %v\n", err)
		res.Outcome, res.Err = Parse, err
		return res
	}

	if err := verify.ValidateFixture(net.Graph, net.Edges, truth, r.Limits); err != nil {
		fmt.Fprintln(w, "FAIL: Test constraints violated.")
		res.Outcome, res.Err, res.Score = Rejected, err, r.RejectedFixtureScore
		return res
	}
	fmt.Fprintln(w, "PASS: Test constraints validated.")

	rep := r.Scorer.Verify(net.Graph, cand, verify.CountsOf(truth))
	res.Report, res.Score, res.Err = rep, rep.Score, rep.Reason
	if !rep.Valid {
		writeFailures(w, rep.Reason)
		res.Outcome = Invalid
		return res
	}

	fmt.Fprintln(w, "SUCCESS: The solution is a valid flow decomposition.")
	fmt.Fprintf(w, "Total Paths: %d, Total Cycles: %d, Net Total: %d\n",
		rep.Candidate.Paths, rep.Candidate.Cycles, rep.Candidate.Total())
	res.Outcome = Valid

	return res
}

// writeFailures prints one FAIL line per verification error.
func writeFailures(w io.Writer, reason error) {
	for _, err := range multierr.Errors(reason) {
		var (
			ee *verify.EndpointError
			me *verify.MissingEdgeError
			fm *verify.FlowMismatchError
		)
		switch {
		case errors.As(err, &ee):
			fmt.Fprintf(w, "FAIL: Path %d does not start at Source (%d) or end at Sink (%d). Path: %s\n",
				ee.Index, ee.Source, ee.Sink, vertexList(ee.Vertices))
		case errors.As(err, &me):
			kind := "Path"
			if me.Kind == flow.PhaseCycles {
				kind = "Cycle"
			}
			fmt.Fprintf(w, "FAIL: %s %d uses non-existent edge %s.\n", kind, me.Index, me.Edge)
		case errors.As(err, &fm):
			fmt.Fprintf(w, "FAIL: Flow mismatch on edge %s. Expected %d, got %d.\n", fm.Edge, fm.Expected, fm.Got)
		default:
			fmt.Fprintf(w, "FAIL: %v\n", err)
		}
	}
}

func vertexList(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteTotals prints the closing lines of a scoring run.
func WriteTotals(w io.Writer, runTotal, grandTotal int) {
	fmt.Fprintf(w, "Total Score across all tests: %d\n", runTotal)
	fmt.Fprintf(w, "Final Total Score across all tests: %d\n", grandTotal)
}
