package verify

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/flow"
)

var validate = validator.New()

// Limits bounds what a test fixture may contain.
type Limits struct {
	MaxVertices int   `yaml:"max_vertices" validate:"gt=0"`
	MaxEdges    int   `yaml:"max_edges" validate:"gt=0"`
	MaxEdgeFlow int64 `yaml:"max_edge_flow" validate:"gt=0"`
	MaxPaths    int   `yaml:"max_paths" validate:"gt=0"`
	MaxCycles   int   `yaml:"max_cycles" validate:"gt=0"`
}

// DefaultLimits returns the fixture bounds: 50 vertices, 100 edges,
// edge flow 1000, 20 reference paths and 20 reference cycles.
func DefaultLimits() Limits {
	return Limits{
		MaxVertices: 50,
		MaxEdges:    100,
		MaxEdgeFlow: 1000,
		MaxPaths:    20,
		MaxCycles:   20,
	}
}

// bound is one named value checked against its limit.
type bound struct {
	name  string
	value int64
	limit int64
}

// ValidateFixture rejects malformed test fixtures: a network over the size
// limits, a truth decomposition over the record limits, or a truth that does
// not verify against its own network.
//
// declaredEdges is E from the fixture header; the maximum edge flow is taken
// over pairs with parallel edges summed.
//
// Returns nil, or an error wrapping ErrFixtureRejected and every violated bound.
func ValidateFixture(net *core.Graph, declaredEdges int, truth *flow.Decomposition, limits Limits) error {
	if net == nil || truth == nil {
		return fmt.Errorf("%w: %v", ErrFixtureRejected, ErrNilInput)
	}

	var maxFlow int64
	for _, f := range net.FlowByPair() {
		if f > maxFlow {
			maxFlow = f
		}
	}
	counts := CountsOf(truth)
	bounds := []bound{
		{"vertices", int64(net.VertexCount()), int64(limits.MaxVertices)},
		{"edges", int64(declaredEdges), int64(limits.MaxEdges)},
		{"max edge flow", maxFlow, limits.MaxEdgeFlow},
		{"reference paths", int64(counts.Paths), int64(limits.MaxPaths)},
		{"reference cycles", int64(counts.Cycles), int64(limits.MaxCycles)},
	}

	var violations error
	for _, b := range bounds {
		if err := validate.Var(b.value, fmt.Sprintf("lte=%d", b.limit)); err != nil {
			violations = multierr.Append(violations, fmt.Errorf("%s %d exceeds %d", b.name, b.value, b.limit))
		}
	}
	if violations != nil {
		return fmt.Errorf("%w: %v", ErrFixtureRejected, violations)
	}

	if err := Check(net, truth); err != nil {
		return fmt.Errorf("%w: reference does not verify: %v", ErrFixtureRejected, err)
	}

	return nil
}

// Validate checks the limits themselves (all strictly positive).
func (l Limits) Validate() error {
	return validate.Struct(l)
}
