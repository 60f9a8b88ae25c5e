// Package metrics counts decomposition and scoring activity on a private
// Prometheus registry and exports it in the node_exporter textfile format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/flow"
)

const namespace = "flowdecomp"

// Fixture outcomes, used as the "outcome" label of fixtures_total.
const (
	OutcomeValid    = "valid"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
	OutcomeParse    = "parse_error"
	OutcomeSkipped  = "skipped"
)

// Collector owns the registry and every metric the commands report.
type Collector struct {
	reg *prometheus.Registry

	Decompositions   prometheus.Counter
	PathsExtracted   prometheus.Counter
	CyclesExtracted  prometheus.Counter
	UndecomposedFlow prometheus.Gauge
	Fixtures         *prometheus.CounterVec
	ScoreTotal       prometheus.Gauge
}

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		Decompositions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "decompositions_total", Help: "Completed decomposition runs.",
		}),
		PathsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "paths_extracted_total", Help: "Source-sink paths extracted.",
		}),
		CyclesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cycles_extracted_total", Help: "Cycles extracted.",
		}),
		UndecomposedFlow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "undecomposed_flow", Help: "Flow left on the graph by the last run.",
		}),
		Fixtures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "fixtures_total", Help: "Scored fixtures by outcome.",
		}, []string{"outcome"}),
		ScoreTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "score_total", Help: "Score awarded by the last scoring run.",
		}),
	}
	c.reg.MustRegister(
		c.Decompositions, c.PathsExtracted, c.CyclesExtracted,
		c.UndecomposedFlow, c.Fixtures, c.ScoreTotal,
	)

	return c
}

// Registry exposes the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ObserveDecomposition records one finished run.
func (c *Collector) ObserveDecomposition(d *flow.Decomposition) {
	c.Decompositions.Inc()
	c.PathsExtracted.Add(float64(len(d.Paths)))
	c.CyclesExtracted.Add(float64(len(d.Cycles)))
	c.UndecomposedFlow.Set(float64(d.Residual))
}

// ObserveFixture records the outcome of one scored fixture.
func (c *Collector) ObserveFixture(outcome string) {
	c.Fixtures.WithLabelValues(outcome).Inc()
}

// SetScore records the total of a scoring run.
func (c *Collector) SetScore(total int) { c.ScoreTotal.Set(float64(total)) }

// WriteTextfile writes the registry to path; an empty path is a no-op.
func (c *Collector) WriteTextfile(path string, logger *zap.Logger) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("metrics written", zap.String("path", path))
	}

	return nil
}
