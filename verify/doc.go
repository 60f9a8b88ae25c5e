// Package verify checks a candidate flow decomposition against the network
// it claims to decompose, and scores it against a reference decomposition.
//
// Reconstruction
//
//	Each path's weight is added to every consecutive vertex pair it lists,
//	and so is each cycle's, reading the closed form [v0, …, vk-1, v0] pair
//	by pair. Pairs are aggregate keys: parallel network edges are summed
//	into one expected value, and any reconstructed pair must exist in it.
//
// Checks (Check)
//
//   - every path starts at vertex 1 and ends at vertex V   (*EndpointError)
//   - every traversed pair exists in the network            (*MissingEdgeError)
//   - every network pair's reconstructed flow equals its declared flow
//     (*FlowMismatchError, all of them, combined with multierr)
//
// Scoring (Scorer)
//
//	score = max(1, 40 + refPaths + refCycles − paths − cycles)
//
//	A valid candidate using fewer records than the reference beats 40; an
//	invalid one scores 0 (Report.Valid == false).
//
// Fixtures (ValidateFixture)
//
//	A fixture is rejected when V > 50, declared E > 100, any pair's flow
//	exceeds 1000, the reference has more than 20 paths or 20 cycles, or the
//	reference itself fails Check.
package verify
