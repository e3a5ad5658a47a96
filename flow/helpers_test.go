package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elimination/flow"
)

// arc is a compact edge literal for building test networks.
type arc struct {
	from, to int
	cap      int64
}

// buildNetwork creates a network with n vertices and the given arcs.
func buildNetwork(t testing.TB, n int, arcs ...arc) *flow.Network {
	t.Helper()
	nw := flow.NewNetwork(n)
	for _, a := range arcs {
		_, err := nw.AddEdge(a.from, a.to, a.cap)
		require.NoError(t, err)
	}
	return nw
}

// clrsNetwork is the six-vertex textbook network with max flow 23.
func clrsNetwork(t testing.TB) *flow.Network {
	return buildNetwork(t, 6,
		arc{0, 1, 16}, arc{0, 2, 13},
		arc{1, 3, 12},
		arc{2, 1, 4}, arc{2, 4, 14},
		arc{3, 2, 9}, arc{3, 5, 20},
		arc{4, 3, 7}, arc{4, 5, 4},
	)
}

// assertFeasibleFlow verifies that after a max-flow run:
//
//	0 ≤ Flow ≤ Cap on every edge,
//	net flow is conserved at every vertex other than source and sink,
//	net flow out of source equals want,
//	the residual min cut has capacity want.
func assertFeasibleFlow(t *testing.T, nw *flow.Network, source, sink int, want int64) {
	t.Helper()
	for i, e := range nw.Edges() {
		require.GreaterOrEqual(t, e.Flow, int64(0), "edge %d flow below zero", i)
		require.LessOrEqual(t, e.Flow, e.Cap, "edge %d flow above capacity", i)
	}
	for v := 0; v < nw.Order(); v++ {
		if v == source || v == sink {
			continue
		}
		require.Zero(t, nw.FlowValue(v), "conservation violated at %d", v)
	}
	require.Equal(t, want, nw.FlowValue(source))
	require.Equal(t, -want, nw.FlowValue(sink))

	side := flow.MinCut(nw, source)
	require.True(t, side[source])
	require.False(t, side[sink])
	require.Equal(t, want, flow.CutCapacity(nw, side))
}
