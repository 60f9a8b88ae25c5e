package flow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/flowdecomp/flow"
)

// BenchmarkDecompose measures full runs on random conserving networks at the
// fixture size limit (50 vertices) and beyond.
func BenchmarkDecompose(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		seed     int64
	}{
		{"Fixture", 50, 42},
		{"Large", 400, 7},
	}
	for _, tc := range cases {
		g := randomConservingGraph(tc.vertices, tc.seed)
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = flow.Decompose(context.Background(), g.Clone(), nil)
			}
		})
	}
}
