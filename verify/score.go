package verify

// Default scoring constants.
const (
	DefaultBase  = 40
	DefaultFloor = 1
)

// Scorer rewards decompositions that use fewer records than the reference:
//
//	score = max(Floor, Base + ref.Paths + ref.Cycles − cand.Paths − cand.Cycles)
type Scorer struct {
	Base  int
	Floor int
}

// DefaultScorer returns Scorer{Base: 40, Floor: 1}.
func DefaultScorer() Scorer {
	return Scorer{Base: DefaultBase, Floor: DefaultFloor}
}

// Score applies the formula to valid candidate counts.
func (s Scorer) Score(ref, cand Counts) int {
	score := s.Base + ref.Total() - cand.Total()
	if score < s.Floor {
		return s.Floor
	}

	return score
}
