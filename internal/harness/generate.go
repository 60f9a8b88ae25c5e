package harness

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/builder"
	"github.com/katalvlaran/flowdecomp/format"
	"github.com/katalvlaran/flowdecomp/verify"
)

// GenerateJob describes one random fixture for cmd/flowgen.
//   - Name, Dir: files are written as <Dir>/<Name>.graph and <Dir>/<Name>.truth.
//   - Vertices, Routes, Loops: network size and record counts.
//   - MinWeight, MaxWeight: uniform record weight range.
//   - Seed: makes the fixture reproducible.
//   - Limits: the generated fixture must pass verify.ValidateFixture.
type GenerateJob struct {
	Name      string
	Dir       string
	Vertices  int
	Routes    int
	Loops     int
	MinWeight int64
	MaxWeight int64
	Seed      int64
	Limits    verify.Limits
	Out       io.Writer
	Logger    *zap.Logger
}

// GenerateFixture builds a random conserving network whose generating
// records serve as its truth, checks it against job.Limits, and writes both
// files. Nothing is written when the fixture would be rejected.
func GenerateFixture(job GenerateJob) (graphPath, truthPath string, err error) {
	if job.MinWeight <= 0 || job.MaxWeight < job.MinWeight {
		return "", "", fmt.Errorf("harness: weight range [%d, %d]: %w", job.MinWeight, job.MaxWeight, builder.ErrInvalidWeight)
	}
	net, err := builder.BuildNetwork(job.Vertices,
		[]builder.BuilderOption{
			builder.WithSeed(job.Seed),
			builder.WithWeightFn(builder.UniformWeightFn(job.MinWeight, job.MaxWeight)),
			builder.WithShuffledEdges(),
		},
		builder.RandomRoutes(job.Routes),
		builder.RandomLoops(job.Loops),
	)
	if err != nil {
		return "", "", fmt.Errorf("harness: %w", err)
	}

	g, truth := net.Graph(), net.Truth()
	if err := verify.ValidateFixture(g, g.EdgeCount(), truth, job.Limits); err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(job.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("harness: fixture dir: %w", err)
	}
	graphPath = filepath.Join(job.Dir, job.Name+".graph")
	truthPath = filepath.Join(job.Dir, job.Name+".truth")
	if err := format.SaveNetwork(graphPath, g); err != nil {
		return "", "", fmt.Errorf("harness: write network: %w", err)
	}
	if err := format.SaveDecomposition(truthPath, truth); err != nil {
		return "", "", fmt.Errorf("harness: write truth: %w", err)
	}

	if job.Out != nil {
		fmt.Fprintf(job.Out, "Generated %s (%d vertices, %d edges) and %s (%d paths, %d cycles)\n",
			graphPath, g.VertexCount(), g.EdgeCount(), truthPath, len(truth.Paths), len(truth.Cycles))
	}
	if job.Logger != nil {
		job.Logger.Info("fixture generated", zap.String("graph", graphPath), zap.Int64("seed", job.Seed),
			zap.Int("edges", g.EdgeCount()), zap.Int64("total_flow", g.TotalFlow()))
	}

	return graphPath, truthPath, nil
}
