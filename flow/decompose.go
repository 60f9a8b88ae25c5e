package flow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowdecomp/bfs"
	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/cycle"
)

// Decompose splits the flow on g into weighted source→sink paths and
// weighted elementary cycles.
//
// The run has two phases, never interleaved:
//  1. Paths: repeatedly take the fewest-edge source→sink walk over positive
//     residual flow (bfs.FindPath), record it with its bottleneck as weight,
//     and subtract that weight from every edge it used.
//  2. Cycles: repeatedly take the first cycle found by cycle.Find, record it
//     explicitly closed, and subtract its bottleneck along it.
//
// Subtraction targets the exact edges the finder traversed, so parallel
// edges are debited independently.
//
// g is consumed: its residual flow is reduced in place. Decompose a Clone to
// keep the original.
//
// Returns the decomposition and any of: ErrGraphNil, ErrIterationLimit,
// *ExtractionError, or a wrapped context error.
//
// Complexity: each extraction lowers the total residual flow by at least one
// unit, so at most TotalFlow extractions, each O(V + E) for paths and
// O(E · (V + E)) for cycles.
func Decompose(ctx context.Context, g *core.Graph, opts *Options) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := opts.normalize()
	r := &run{ctx: ctx, g: g, opts: o, dec: &Decomposition{}}

	// 1) Path phase to fixpoint
	if err := r.paths(); err != nil {
		return r.dec, err
	}
	// 2) Cycle phase to fixpoint
	if err := r.cycles(); err != nil {
		return r.dec, err
	}

	r.dec.Residual = g.TotalFlow()
	if r.dec.Residual > 0 {
		o.Logger.Warn("flow left after decomposition; input violates conservation",
			zap.Int64("residual", r.dec.Residual))
	}

	return r.dec, nil
}

// run carries the mutable state of one Decompose call.
type run struct {
	ctx        context.Context
	g          *core.Graph
	opts       Options
	dec        *Decomposition
	iterations int
}

// step checks cancellation before a search.
func (r *run) step() error {
	select {
	case <-r.ctx.Done():
		return fmt.Errorf("flow: %w", r.ctx.Err())
	default:
	}

	return nil
}

// charge spends one unit of the iteration budget on a found walk.
func (r *run) charge() error {
	if r.opts.MaxIterations > 0 && r.iterations >= r.opts.MaxIterations {
		return fmt.Errorf("%w: %d", ErrIterationLimit, r.opts.MaxIterations)
	}
	r.iterations++

	return nil
}

func (r *run) paths() error {
	for {
		if err := r.step(); err != nil {
			return err
		}
		walk, err := bfs.FindPath(r.g, bfs.WithContext(r.ctx))
		if errors.Is(err, bfs.ErrNoPath) {
			return nil
		}
		if err != nil {
			return err
		}
		if walk.Bottleneck <= 0 {
			return nil
		}
		if err = r.charge(); err != nil {
			return err
		}

		p := Path{Weight: walk.Bottleneck, Vertices: walk.Vertices}
		if err = r.subtract(walk); err != nil {
			return &ExtractionError{Phase: PhasePaths, Index: len(r.dec.Paths) + 1, Err: err}
		}
		r.dec.Paths = append(r.dec.Paths, p)
		if r.opts.Verbose {
			r.opts.Logger.Info("path extracted",
				zap.Int64("weight", p.Weight), zap.Ints("vertices", p.Vertices))
		}
		r.opts.OnPath(p)
	}
}

func (r *run) cycles() error {
	for {
		if err := r.step(); err != nil {
			return err
		}
		walk, err := cycle.Find(r.g, cycle.WithContext(r.ctx))
		if errors.Is(err, cycle.ErrNoCycle) {
			return nil
		}
		if err != nil {
			return err
		}
		if walk.Bottleneck <= 0 {
			return nil
		}
		if err = r.charge(); err != nil {
			return err
		}

		// cycle.Find already reports the closed form [u, v, …, u].
		c := Cycle{Weight: walk.Bottleneck, Vertices: walk.Vertices}
		if err = r.subtract(walk); err != nil {
			return &ExtractionError{Phase: PhaseCycles, Index: len(r.dec.Cycles) + 1, Err: err}
		}
		r.dec.Cycles = append(r.dec.Cycles, c)
		if r.opts.Verbose {
			r.opts.Logger.Info("cycle extracted",
				zap.Int64("weight", c.Weight), zap.Ints("vertices", c.Vertices))
		}
		r.opts.OnCycle(c)
	}
}

// subtract debits the walk's bottleneck from every edge it used.
func (r *run) subtract(walk *core.Walk) error {
	for _, id := range walk.EdgeIDs {
		if err := r.g.Subtract(id, walk.Bottleneck); err != nil {
			return err
		}
	}

	return nil
}
