package flow

import "context"

// FordFulkerson computes the maximum flow from `source` to `sink` in nw
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns:
//   - maxFlow : the total flow value pushed by this call
//   - err     : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink, or
//     context cancellation error
//
// Steps:
//  1. Validate source and sink (O(1)).
//  2. Repeat until no augmenting path:
//     a. Iteratively DFS to find any path s→t with positive residual (O(E)).
//     b. If none found, break.
//     c. Augment along path, updating Edge.Flow (O(path length)).
//     d. Accumulate flow; if opts.Verbose, log path and delta.
//     e. Check ctx for cancellation.
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow. Terminates on integral capacities
//	        because every augmentation adds at least one unit.
//	Memory: O(V) for the DFS stack and parent edges.
//
// Suitable for small integral networks; for stronger guarantees,
// consider Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(
	ctx context.Context,
	nw *Network,
	source, sink int,
	opts FlowOptions,
) (maxFlow int64, err error) {
	if err = checkTerminals(nw, source, sink); err != nil {
		return 0, err
	}

	via := make([]int, nw.Order())
	minCap := make([]int64, nw.Order())
	stack := make([]int, 0, nw.Order())

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		// minCap[v] > 0 marks v as discovered.
		for i := range minCap {
			minCap[i] = 0
			via[i] = -1
		}
		minCap[source] = unbounded
		stack = append(stack[:0], source)
		found := false

		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, id := range nw.adj[u] {
				e := &nw.edges[id]
				v := e.Other(u)
				if v == u || minCap[v] != 0 {
					continue
				}
				r := e.Residual(u)
				if r <= 0 {
					continue
				}
				via[v] = id
				minCap[v] = min(minCap[u], r)
				if v == sink {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}

		if !found {
			break
		}

		delta := minCap[sink]
		if opts.Verbose {
			opts.logger().Debug("augmenting path",
				"algorithm", AlgFordFulkerson,
				"path", tracePath(nw, via, source, sink),
				"flow", delta)
		}
		augment(nw, via, source, sink, delta)
		maxFlow += delta
	}

	return maxFlow, nil
}
