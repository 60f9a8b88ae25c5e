// flowscore verifies a directory of candidate decompositions against the
// fixtures they were produced from and adds the run's score to a score file.
//
//	$ flowscore tests outputs
//	$ flowscore -score-file scores.txt -metrics-file score.prom tests outputs
//
// Every tests/NAME.graph is paired with tests/NAME.truth and outputs/NAME.out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/internal/config"
	"github.com/katalvlaran/flowdecomp/internal/harness"
	"github.com/katalvlaran/flowdecomp/internal/logging"
	"github.com/katalvlaran/flowdecomp/internal/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath, scoreFile, metricsFile string
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&scoreFile, "score-file", "", "running score file (default from config: test_scores.txt)")
	flag.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <test_input_dir> <student_output_dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if scoreFile != "" {
		cfg.Score.ScoreFile = scoreFile
	}
	if metricsFile != "" {
		cfg.Metrics.Textfile = metricsFile
	}

	base, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer base.Sync()
	logger, _ := logging.WithRun(base, "flowscore")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := harness.NewRunner(os.Stdout, logger)
	r.Scorer = cfg.Score.Scorer()
	r.Limits = cfg.Limits
	r.RejectedFixtureScore = cfg.Score.RejectedFixtureScore
	r.Metrics = metrics.New()

	sum, err := r.Run(ctx, flag.Arg(0), flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	grand, err := harness.Accumulate(cfg.Score.ScoreFile, sum.Total)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	harness.WriteTotals(os.Stdout, sum.Total, grand)
	logger.Info("scoring complete", zap.Int("run_total", sum.Total), zap.Int("grand_total", grand),
		zap.String("score_file", cfg.Score.ScoreFile))

	if err := r.Metrics.WriteTextfile(cfg.Metrics.Textfile, logger); err != nil {
		logger.Warn("metrics not written", zap.Error(err))
	}

	return 0
}
