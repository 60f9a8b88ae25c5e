// flowdecomp decomposes the flow of one network file into weighted
// source-sink paths and cycles.
//
//	$ flowdecomp cases/NAME.graph                 # writes outputs/NAME.out
//	$ flowdecomp -out results cases/NAME.graph    # writes results/NAME.out
//	$ flowdecomp -config flowdecomp.yaml -metrics-file run.prom cases/NAME.graph
//
// Settings not given on the command line come from the config file and the
// FLOWDECOMP_* environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/flow"
	"github.com/katalvlaran/flowdecomp/internal/config"
	"github.com/katalvlaran/flowdecomp/internal/harness"
	"github.com/katalvlaran/flowdecomp/internal/logging"
	"github.com/katalvlaran/flowdecomp/internal/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath, outDir, metricsFile string
	var verbose bool
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&outDir, "out", "", "output directory (default from config: outputs)")
	flag.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	flag.BoolVar(&verbose, "v", false, "log every extracted path and cycle")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input_file_path>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if outDir != "" {
		cfg.Decompose.OutputDir = outDir
	}
	if metricsFile != "" {
		cfg.Metrics.Textfile = metricsFile
	}
	if verbose {
		cfg.Decompose.Verbose = true
	}

	base, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer base.Sync()
	logger, _ := logging.WithRun(base, "flowdecomp")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	col := metrics.New()
	_, _, err = harness.DecomposeFile(ctx, harness.DecomposeJob{
		Input:     flag.Arg(0),
		OutputDir: cfg.Decompose.OutputDir,
		Options: flow.Options{
			Logger:        logger,
			Verbose:       cfg.Decompose.Verbose,
			MaxIterations: cfg.Decompose.MaxIterations,
		},
		Out:     os.Stdout,
		Metrics: col,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Error("decomposition failed", zap.Error(err))
		return 1
	}

	if err := col.WriteTextfile(cfg.Metrics.Textfile, logger); err != nil {
		logger.Warn("metrics not written", zap.Error(err))
	}

	return 0
}
