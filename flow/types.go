package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrGraphNil is returned when Decompose is given a nil graph.
var ErrGraphNil = errors.New("flow: graph is nil")

// ErrIterationLimit is returned when Options.MaxIterations extractions did
// not exhaust the residual flow.
var ErrIterationLimit = errors.New("flow: iteration limit reached")

// Path is one weighted source→sink path of a decomposition.
type Path struct {
	Weight   int64
	Vertices []int
}

// Cycle is one weighted elementary cycle of a decomposition.
// Vertices is explicitly closed: the first vertex is repeated at the end.
type Cycle struct {
	Weight   int64
	Vertices []int
}

// Decomposition is the ordered result of a run: paths then cycles, each in
// extraction order.
type Decomposition struct {
	Paths  []Path
	Cycles []Cycle

	// Residual is the flow left on the graph when both phases stopped.
	// It is 0 whenever the input satisfies flow conservation.
	Residual int64
}

// Size returns the number of records, paths plus cycles.
func (d *Decomposition) Size() int { return len(d.Paths) + len(d.Cycles) }

// Phase names the stage of a run that produced a record.
type Phase string

const (
	PhasePaths  Phase = "paths"
	PhaseCycles Phase = "cycles"
)

// ExtractionError is returned when subtracting an extracted weight fails;
// it means a finder reported an edge that cannot carry its own bottleneck.
type ExtractionError struct {
	Phase Phase
	Index int // 1-based record index within the phase
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("flow: %s #%d: %v", e.Phase, e.Index, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Options configures Decompose.
//   - Logger: receives one info entry per extraction when Verbose is set,
//     and a warning when flow is left over (nil ⇒ no logging).
//   - Verbose: log each extracted path and cycle.
//   - MaxIterations: stop with ErrIterationLimit after this many extractions
//     across both phases; 0 means unlimited.
//   - OnPath / OnCycle: called after each record is appended.
type Options struct {
	Logger        *zap.Logger
	Verbose       bool
	MaxIterations int
	OnPath        func(Path)
	OnCycle       func(Cycle)
}

// normalize fills in defaults for a possibly nil *Options.
func (o *Options) normalize() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	if out.OnPath == nil {
		out.OnPath = func(Path) {}
	}
	if out.OnCycle == nil {
		out.OnCycle = func(Cycle) {}
	}

	return out
}
