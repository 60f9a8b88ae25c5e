package harness_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/flowdecomp/flow"
	"github.com/katalvlaran/flowdecomp/format"
	"github.com/katalvlaran/flowdecomp/internal/harness"
	"github.com/katalvlaran/flowdecomp/internal/metrics"
	"github.com/katalvlaran/flowdecomp/verify"
)

const (
	chainGraph = "3 2\n1 2 5\n2 3 5\n"
	chainTruth = "1 0\n5 1 2 3\n"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	tests, outs := filepath.Join(dir, "tests"), filepath.Join(dir, "outs")
	write(t, filepath.Join(tests, "b.graph"), chainGraph)
	write(t, filepath.Join(tests, "a.graph"), chainGraph)
	write(t, filepath.Join(tests, "a.truth"), chainTruth)

	fx, err := harness.Discover(tests, outs)
	require.NoError(t, err)
	require.Len(t, fx, 2)
	assert.Equal(t, harness.Fixture{
		Name:   "a",
		Graph:  filepath.Join(tests, "a.graph"),
		Truth:  filepath.Join(tests, "a.truth"),
		Output: filepath.Join(outs, "a.out"),
	}, fx[0])
	assert.Equal(t, "b", fx[1].Name)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("outputs", "net.out"), harness.OutputPath("cases/net.graph", "outputs"))
	assert.Equal(t, filepath.Join("o", "noext.out"), harness.OutputPath("noext", "o"))
	assert.Equal(t, filepath.Join("o", "a.b.out"), harness.OutputPath("a.b.graph", "o"))
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	tests, outs := filepath.Join(dir, "tests"), filepath.Join(dir, "outs")

	// a: valid, same size as the reference.
	write(t, filepath.Join(tests, "a.graph"), chainGraph)
	write(t, filepath.Join(tests, "a.truth"), chainTruth)
	write(t, filepath.Join(outs, "a.out"), chainTruth)
	// b: wrong weight on every edge.
	write(t, filepath.Join(tests, "b.graph"), chainGraph)
	write(t, filepath.Join(tests, "b.truth"), chainTruth)
	write(t, filepath.Join(outs, "b.out"), "1 0\n4 1 2 3\n")
	// c: no truth.
	write(t, filepath.Join(tests, "c.graph"), chainGraph)
	// d: no candidate.
	write(t, filepath.Join(tests, "d.graph"), chainGraph)
	write(t, filepath.Join(tests, "d.truth"), chainTruth)
	// e: too many vertices.
	write(t, filepath.Join(tests, "e.graph"), "51 1\n1 51 1\n")
	write(t, filepath.Join(tests, "e.truth"), "1 0\n1 1 51\n")
	write(t, filepath.Join(outs, "e.out"), "1 0\n1 1 51\n")
	// f: truncated candidate.
	write(t, filepath.Join(tests, "f.graph"), chainGraph)
	write(t, filepath.Join(tests, "f.truth"), chainTruth)
	write(t, filepath.Join(outs, "f.out"), "2 0\n5 1 2 3\n")

	var narrative bytes.Buffer
	r := harness.NewRunner(&narrative, zaptest.NewLogger(t))
	r.Metrics = metrics.New()

	sum, err := r.Run(context.Background(), tests, outs)
	require.NoError(t, err)
	require.Len(t, sum.Results, 6)

	var outcomes []harness.Outcome
	for _, res := range sum.Results {
		outcomes = append(outcomes, res.Outcome)
	}
	assert.Equal(t, []harness.Outcome{
		harness.Valid, harness.Invalid, harness.Skipped, harness.Skipped, harness.Rejected, harness.Parse,
	}, outcomes)
	assert.Equal(t, 40, sum.Results[0].Score)
	assert.Zero(t, sum.Results[1].Score)
	assert.Equal(t, 40, sum.Results[4].Score)
	assert.ErrorIs(t, sum.Results[4].Err, verify.ErrFixtureRejected)
	assert.ErrorIs(t, sum.Results[5].Err, format.ErrTruncated)
	assert.Equal(t, 80, sum.Total)

	text := narrative.String()
	assert.Contains(t, text, "Verifying "+filepath.Join(outs, "a.out")+" against "+filepath.Join(tests, "a.graph")+"...")
	assert.Contains(t, text, "SUCCESS: The solution is a valid flow decomposition.\nTotal Paths: 1, Total Cycles: 0, Net Total: 1\n")
	assert.Contains(t, text, "FAIL: Flow mismatch on edge (1, 2). Expected 5, got 4.\nFAIL: Flow mismatch on edge (2, 3). Expected 5, got 4.\n")
	assert.Contains(t, text, "Truth file "+filepath.Join(tests, "c.truth")+" does not exist. Skipping...")
	assert.Contains(t, text, "Output file "+filepath.Join(outs, "d.out")+" does not exist. Skipping...")
	assert.Contains(t, text, "FAIL: Test constraints violated.")
	assert.Contains(t, text, "FAIL: Parsing Error - ")
	assert.Equal(t, 2, strings.Count(text, "PASS: Test constraints validated."))

	assert.Equal(t, 80.0, testutil.ToFloat64(r.Metrics.ScoreTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Metrics.Fixtures.WithLabelValues(metrics.OutcomeSkipped)))
}

func TestRunner_ScoreNarrative(t *testing.T) {
	dir := t.TempDir()
	f := harness.Fixture{
		Name:   "x",
		Graph:  filepath.Join(dir, "x.graph"),
		Truth:  filepath.Join(dir, "x.truth"),
		Output: filepath.Join(dir, "x.out"),
	}
	write(t, f.Graph, chainGraph)
	write(t, f.Truth, chainTruth)

	tests := []struct {
		name string
		out  string
		line string
	}{
		{"endpoint", "1 0\n5 1 2\n", "FAIL: Path 1 does not start at Source (1) or end at Sink (3). Path: [1, 2]\n"},
		{"missing edge", "1 1\n5 1 2 3\n1 3 2 3\n", "FAIL: Cycle 1 uses non-existent edge (3, 2).\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			write(t, f.Output, tc.out)
			var buf bytes.Buffer
			r := harness.NewRunner(&buf, nil)
			res := r.Score(f)
			assert.Equal(t, harness.Invalid, res.Outcome)
			assert.Zero(t, res.Score)
			assert.Contains(t, buf.String(), tc.line)
		})
	}
}

func TestRunner_Cancelled(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.graph"), chainGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := harness.NewRunner(nil, nil).Run(ctx, dir, dir)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAccumulate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_scores.txt")

	total, err := harness.Accumulate(path, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, total)

	total, err = harness.Accumulate(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	body, _ := os.ReadFile(path)
	assert.Equal(t, "42\n", string(body))

	write(t, path, "  \n")
	total, err = harness.Accumulate(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	write(t, path, "many\n")
	_, err = harness.Accumulate(path, 1)
	assert.Error(t, err)
}

func TestWriteTotals(t *testing.T) {
	var buf bytes.Buffer
	harness.WriteTotals(&buf, 80, 122)
	assert.Equal(t, "Total Score across all tests: 80\nFinal Total Score across all tests: 122\n", buf.String())
}

func TestDecomposeFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cases", "side.graph")
	write(t, in, "4 6\n1 2 3\n2 3 3\n3 4 3\n4 1 0\n2 3 2\n3 2 2\n")
	outDir := filepath.Join(dir, "nested", "outputs")

	var buf bytes.Buffer
	col := metrics.New()
	outPath, d, err := harness.DecomposeFile(context.Background(), harness.DecomposeJob{
		Input:     in,
		OutputDir: outDir,
		Options:   flow.Options{Logger: zaptest.NewLogger(t)},
		Out:       &buf,
		Metrics:   col,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "side.out"), outPath)
	assert.Equal(t, 2, d.Size())

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "1 1\n3 1 2 3 4\n2 2 3 2\n", string(body))

	assert.Equal(t, "Processing input file: "+in+"\nSuccessfully read 1 file.\nGenerated output file: "+
		outPath+"\nDecomposition complete.\n", buf.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(col.CyclesExtracted))
}

func TestDecomposeFile_ParseError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.graph")
	write(t, in, "3 x\n")

	_, _, err := harness.DecomposeFile(context.Background(), harness.DecomposeJob{Input: in, OutputDir: dir})
	var se *format.SyntaxError
	assert.True(t, errors.As(err, &se))
	assert.NoFileExists(t, filepath.Join(dir, "bad.out"))
}
