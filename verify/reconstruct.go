package verify

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/flowdecomp/core"
	"github.com/katalvlaran/flowdecomp/flow"
)

// Reconstruction is the per-pair flow implied by a decomposition, kept in
// ascending (from, to) order so reports list edges deterministically.
type Reconstruction struct {
	m *treemap.Map // core.EdgeKey → int64
}

// edgeKeyComparator orders EdgeKeys by From, then To.
func edgeKeyComparator(a, b interface{}) int {
	ka, kb := a.(core.EdgeKey), b.(core.EdgeKey)
	switch {
	case ka.From < kb.From:
		return -1
	case ka.From > kb.From:
		return 1
	case ka.To < kb.To:
		return -1
	case ka.To > kb.To:
		return 1
	default:
		return 0
	}
}

func newReconstruction(known map[core.EdgeKey]int64) *Reconstruction {
	m := treemap.NewWith(edgeKeyComparator)
	for k := range known {
		m.Put(k, int64(0))
	}

	return &Reconstruction{m: m}
}

// add credits w to k; it reports false if k is not a known pair.
func (r *Reconstruction) add(k core.EdgeKey, w int64) bool {
	v, ok := r.m.Get(k)
	if !ok {
		return false
	}
	r.m.Put(k, v.(int64)+w)

	return true
}

// Flow returns the reconstructed flow on k and whether k is a network pair.
func (r *Reconstruction) Flow(k core.EdgeKey) (int64, bool) {
	v, ok := r.m.Get(k)
	if !ok {
		return 0, false
	}

	return v.(int64), true
}

// Each calls fn for every pair in ascending (from, to) order.
func (r *Reconstruction) Each(fn func(k core.EdgeKey, flow int64)) {
	r.m.Each(func(k, v interface{}) {
		fn(k.(core.EdgeKey), v.(int64))
	})
}

// Map returns the reconstruction as a plain map.
func (r *Reconstruction) Map() map[core.EdgeKey]int64 {
	out := make(map[core.EdgeKey]int64, r.m.Size())
	r.Each(func(k core.EdgeKey, f int64) { out[k] = f })

	return out
}

// Reconstruct adds every record's weight to each consecutive vertex pair it
// lists. known holds the network's pairs (values are ignored); source and
// sink are the required path endpoints.
//
// Cycles are read exactly as serialized: pairs (v0,v1) … (vk-1,v0) come from
// the explicit closing repeat, never from index wraparound. A cycle listed
// without its closing vertex therefore loses its last edge.
//
// Errors (the first one found, records in order):
//   - *EndpointError for a path not running source→sink (including an empty path).
//   - *MissingEdgeError for a pair not in known.
func Reconstruct(d *flow.Decomposition, known map[core.EdgeKey]int64, source, sink int) (*Reconstruction, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	r := newReconstruction(known)

	for i, p := range d.Paths {
		vs := p.Vertices
		if len(vs) == 0 || vs[0] != source || vs[len(vs)-1] != sink {
			return nil, &EndpointError{Index: i + 1, Vertices: vs, Source: source, Sink: sink}
		}
		if err := r.addWalk(flow.PhasePaths, i+1, p.Weight, vs); err != nil {
			return nil, err
		}
	}
	for i, c := range d.Cycles {
		if err := r.addWalk(flow.PhaseCycles, i+1, c.Weight, c.Vertices); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Reconstruction) addWalk(kind flow.Phase, index int, w int64, vs []int) error {
	for j := 0; j+1 < len(vs); j++ {
		k := core.EdgeKey{From: vs[j], To: vs[j+1]}
		if !r.add(k, w) {
			return &MissingEdgeError{Kind: kind, Index: index, Edge: k}
		}
	}

	return nil
}
