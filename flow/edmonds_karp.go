package flow

import "context"

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// The network is modified in place: on return every Edge.Flow holds the
// final flow and the residual graph can be inspected with MinCut.
// Flow already present on nw is kept and extended; call nw.Reset() to
// start from zero.
//
// It returns:
//   - maxFlow: total flow value pushed by this call
//   - err: ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink, or ctx.Err()
//
// Complexity: O(V · E²)
// Memory:     O(V)
func EdmondsKarp(
	ctx context.Context,
	nw *Network,
	source, sink int,
	opts FlowOptions,
) (maxFlow int64, err error) {
	// 1) Validate presence of source/sink
	if err = checkTerminals(nw, source, sink); err != nil {
		return 0, err
	}

	via := make([]int, nw.Order())
	queue := make([]int, 0, nw.Order())

	// 2) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}
		bottle := bfsAugmentingPath(nw, source, sink, via, queue)
		if bottle == 0 {
			break
		}
		if opts.Verbose {
			opts.logger().Debug("augmenting path",
				"algorithm", AlgEdmondsKarp,
				"path", tracePath(nw, via, source, sink),
				"flow", bottle)
		}
		// 3) Augment along the path
		augment(nw, via, source, sink, bottle)
		maxFlow += bottle
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) residual path
// source→sink, records it in via, and returns its bottleneck capacity.
// Returns 0 if the sink is unreachable.
func bfsAugmentingPath(nw *Network, source, sink int, via, queue []int) int64 {
	for i := range via {
		via[i] = -1
	}
	// bottleneck[v] is the smallest residual on the discovered path to v;
	// zero marks unvisited vertices because every tree edge has residual > 0.
	bottleneck := make([]int64, nw.Order())
	bottleneck[source] = unbounded

	queue = append(queue[:0], source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, id := range nw.adj[u] {
			e := &nw.edges[id]
			v := e.Other(u)
			if v == u || bottleneck[v] != 0 {
				continue
			}
			r := e.Residual(u)
			if r <= 0 {
				continue
			}
			via[v] = id
			bottleneck[v] = min(bottleneck[u], r)
			if v == sink {
				return bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}
	return 0
}
