package harness

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/flow"
	"github.com/katalvlaran/flowdecomp/format"
	"github.com/katalvlaran/flowdecomp/internal/metrics"
)

// DecomposeJob describes one decomposition run of cmd/flowdecomp.
//   - Input: the .graph file.
//   - OutputDir: where <NAME>.out is written; created if missing.
//   - Options: passed to flow.Decompose.
//   - Out: narrative (nil ⇒ io.Discard).
//   - Metrics: optional collector.
type DecomposeJob struct {
	Input     string
	OutputDir string
	Options   flow.Options
	Out       io.Writer
	Metrics   *metrics.Collector
}

// DecomposeFile parses job.Input, decomposes it and writes the result.
// It returns the path written and the decomposition.
func DecomposeFile(ctx context.Context, job DecomposeJob) (string, *flow.Decomposition, error) {
	w := job.Out
	if w == nil {
		w = io.Discard
	}
	logger := job.Options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	outPath := OutputPath(job.Input, job.OutputDir)
	if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("harness: output dir: %w", err)
	}

	fmt.Fprintf(w, "Processing input file: %s\n", job.Input)
	net, err := format.LoadNetwork(job.Input)
	if err != nil {
		return "", nil, err
	}
	fmt.Fprintln(w, "Successfully read 1 file.")
	stats := net.Graph.Stats()
	logger.Info("network loaded", zap.String("input", job.Input),
		zap.Int("vertices", stats.VertexCount), zap.Int("edges", stats.EdgeCount),
		zap.Int("parallel_pairs", stats.ParallelPairCount), zap.Int64("total_flow", stats.TotalFlow),
		zap.Int64("max_edge_flow", stats.MaxEdgeFlow))

	d, err := flow.Decompose(ctx, net.Graph, &job.Options)
	if err != nil {
		return "", nil, err
	}
	if job.Metrics != nil {
		job.Metrics.ObserveDecomposition(d)
	}

	if err := format.SaveDecomposition(outPath, d); err != nil {
		return "", nil, fmt.Errorf("harness: write output: %w", err)
	}
	fmt.Fprintf(w, "Generated output file: %s\n", outPath)
	fmt.Fprintln(w, "Decomposition complete.")
	logger.Info("decomposition written", zap.String("output", outPath),
		zap.Int("paths", len(d.Paths)), zap.Int("cycles", len(d.Cycles)), zap.Int64("residual", d.Residual))

	return outPath, d, nil
}
