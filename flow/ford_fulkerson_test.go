package flow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/elimination/flow"
)

// FordFulkersonSuite exercises the Ford–Fulkerson implementation under various scenarios.
type FordFulkersonSuite struct {
	suite.Suite
}

// TestSimplePath verifies that a single-edge network yields max flow == that capacity.
func (s *FordFulkersonSuite) TestSimplePath() {
	nw := buildNetwork(s.T(), 2, arc{0, 1, 10})

	mf, err := flow.FordFulkerson(context.Background(), nw, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), mf)
	require.Equal(s.T(), int64(10), nw.Edge(0).Flow)
}

// TestZeroCapacity ensures that edges with zero capacity produce zero flow.
func (s *FordFulkersonSuite) TestZeroCapacity() {
	nw := buildNetwork(s.T(), 2, arc{0, 1, 0})

	mf, err := flow.FordFulkerson(context.Background(), nw, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
}

// TestParallelEdgesAndLoop sums parallel capacity and ignores self-loops.
func (s *FordFulkersonSuite) TestParallelEdgesAndLoop() {
	nw := buildNetwork(s.T(), 3,
		arc{0, 1, 3}, arc{0, 1, 2},
		arc{2, 2, 5},
	)

	mf, err := flow.FordFulkerson(context.Background(), nw, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), mf)
}

// TestResidualIntegrity verifies capacity, conservation and cut invariants.
func (s *FordFulkersonSuite) TestResidualIntegrity() {
	//   0→1 (5, then 3) → total 8
	//   1→2 (4)
	//   2→3 (2)
	//   0→3 (1)
	nw := buildNetwork(s.T(), 4,
		arc{0, 1, 5}, arc{0, 1, 3},
		arc{1, 2, 4},
		arc{2, 3, 2},
		arc{0, 3, 1},
	)

	mf, err := flow.FordFulkerson(context.Background(), nw, 0, 3, flow.DefaultOptions())
	require.NoError(s.T(), err)
	// one direct unit and two via 0→1→2→3
	require.Equal(s.T(), int64(3), mf)
	assertFeasibleFlow(s.T(), nw, 0, 3, 3)
}

// TestTextbookNetwork agrees with the known optimum.
func (s *FordFulkersonSuite) TestTextbookNetwork() {
	nw := clrsNetwork(s.T())

	mf, err := flow.FordFulkerson(context.Background(), nw, 0, 5, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(23), mf)
	assertFeasibleFlow(s.T(), nw, 0, 5, 23)
}

// TestContextCancellation verifies that an expired context aborts quickly.
func (s *FordFulkersonSuite) TestContextCancellation() {
	nw := buildNetwork(s.T(), 4, arc{0, 1, 1}, arc{1, 2, 1}, arc{2, 3, 1})

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
	defer cancel()
	time.Sleep(1 * time.Millisecond) // ensure deadline exceeded

	_, err := flow.FordFulkerson(ctx, nw, 0, 3, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, context.DeadlineExceeded)
}

// Entry point for running the suite
func TestFordFulkersonSuite(t *testing.T) {
	suite.Run(t, new(FordFulkersonSuite))
}
