package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/flow"
)

// Sentinel errors for verification.
var (
	// ErrNilInput is returned when the network or the decomposition is nil.
	ErrNilInput = errors.New("verify: nil network or decomposition")

	// ErrFixtureRejected wraps every reason a test fixture fails ValidateFixture.
	ErrFixtureRejected = errors.New("verify: fixture rejected")
)

// EndpointError reports a path that does not run from source to sink.
type EndpointError struct {
	Index        int // 1-based path index
	Vertices     []int
	Source, Sink int
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("verify: path %d does not start at source (%d) or end at sink (%d): %v",
		e.Index, e.Source, e.Sink, e.Vertices)
}

// MissingEdgeError reports a traversed pair absent from the network.
type MissingEdgeError struct {
	Kind  flow.Phase // flow.PhasePaths or flow.PhaseCycles
	Index int        // 1-based record index within Kind
	Edge  core.EdgeKey
}

func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("verify: %s %d uses non-existent edge %s", kindName(e.Kind), e.Index, e.Edge)
}

// FlowMismatchError reports a network edge whose reconstructed flow differs
// from the declared flow.
type FlowMismatchError struct {
	Edge     core.EdgeKey
	Expected int64
	Got      int64
}

func (e *FlowMismatchError) Error() string {
	return fmt.Sprintf("verify: flow mismatch on edge %s: expected %d, got %d", e.Edge, e.Expected, e.Got)
}

func kindName(p flow.Phase) string {
	if p == flow.PhaseCycles {
		return "cycle"
	}

	return "path"
}

// Counts is the size of a decomposition: how many paths and cycles it uses.
type Counts struct {
	Paths  int
	Cycles int
}

// CountsOf returns the counts of d.
func CountsOf(d *flow.Decomposition) Counts {
	if d == nil {
		return Counts{}
	}

	return Counts{Paths: len(d.Paths), Cycles: len(d.Cycles)}
}

// Total returns Paths + Cycles.
func (c Counts) Total() int { return c.Paths + c.Cycles }

// Report is the outcome of verifying one candidate decomposition.
//   - Valid: the candidate reproduces the network flow exactly.
//   - Score: the Scorer's value when Valid, 0 otherwise.
//   - Candidate / Reference: the sizes that were compared.
//   - Reason: nil when Valid; otherwise the failure (possibly several
//     FlowMismatchErrors combined, see multierr.Errors).
type Report struct {
	Valid     bool
	Score     int
	Candidate Counts
	Reference Counts
	Reason    error
}
