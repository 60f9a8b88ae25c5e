package verify

import (
	"go.uber.org/multierr"

	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/flow"
)

// Check reports whether d reproduces the flow of net.
//
// net supplies the source (1), the sink (V) and the declared flow per pair,
// with parallel edges summed. net is only read; pass the network before it
// was decomposed.
//
// Returns nil on success, the first *EndpointError or *MissingEdgeError, or
// every *FlowMismatchError combined with multierr, in ascending pair order.
func Check(net *core.Graph, d *flow.Decomposition) error {
	if net == nil || d == nil {
		return ErrNilInput
	}
	want := net.FlowByPair()
	r, err := Reconstruct(d, want, net.Source(), net.Sink())
	if err != nil {
		return err
	}

	var mismatches error
	r.Each(func(k core.EdgeKey, got int64) {
		if got != want[k] {
			mismatches = multierr.Append(mismatches, &FlowMismatchError{Edge: k, Expected: want[k], Got: got})
		}
	})

	return mismatches
}

// Verify checks cand against net and scores it against the reference counts
// with the DefaultScorer.
func Verify(net *core.Graph, cand *flow.Decomposition, ref Counts) Report {
	return DefaultScorer().Verify(net, cand, ref)
}

// Verify checks cand against net and scores it against ref.
// An invalid candidate scores 0. The result depends only on the inputs, so
// repeated calls agree.
func (s Scorer) Verify(net *core.Graph, cand *flow.Decomposition, ref Counts) Report {
	rep := Report{Candidate: CountsOf(cand), Reference: ref}
	if err := Check(net, cand); err != nil {
		rep.Reason = err

		return rep
	}
	rep.Valid = true
	rep.Score = s.Score(ref, rep.Candidate)

	return rep
}
