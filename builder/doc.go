// Package builder assembles flow networks from known records, for tests,
// benchmarks and generated fixtures.
//
// A network is the superposition of routes (source→sink walks) and loops
// (closed walks), each carrying a positive weight. Every internal vertex
// therefore conserves flow, and the records themselves form a valid
// decomposition, returned by Network.Truth.
//
//	net, err := builder.BuildNetwork(6,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Chain(5),
//		builder.RandomRoutes(3),
//		builder.RandomLoops(2),
//	)
//	g := net.Graph()       // one edge per (u, v) pair
//	truth := net.Truth()   // 4 paths, 2 cycles
package builder
