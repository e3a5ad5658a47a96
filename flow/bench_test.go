package flow_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/elimination/flow"
)

// buildRandomNetwork constructs a network with V vertices and
// roughly p probability of an edge between any ordered pair u→v.
// Edge capacities are uniform in [1, maxCap].
func buildRandomNetwork(V int, p float64, maxCap int64, seed int64) []arc {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	var arcs []arc
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v {
				continue // skip self-loops
			}
			if r.Float64() < p {
				arcs = append(arcs, arc{u, v, r.Int63n(maxCap) + 1})
			}
		}
	}
	return arcs
}

// BenchmarkFlowAlgorithms measures the performance of Ford–Fulkerson,
// Edmonds–Karp, and Dinic on networks of increasing size and density.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small", 200, 0.05, 10, 42},
		{"Medium", 500, 0.02, 20, 4242},
		{"Large", 1000, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			arcs := buildRandomNetwork(tc.vertices, tc.edgeProb, tc.maxCap, tc.seed)
			nw := buildNetwork(b, tc.vertices, arcs...)
			sink := tc.vertices - 1

			for _, alg := range flow.Algorithms() {
				b.Run(string(alg), func(b *testing.B) {
					solver, _ := flow.SolverFor(alg)
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						nw.Reset()
						_, _ = solver(context.Background(), nw, 0, sink, flow.DefaultOptions())
					}
				})
			}
		})
	}
}
