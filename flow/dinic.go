package flow

import "context"

// Dinic computes the maximum flow from `source` to `sink` in nw
// using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow : the total flow value pushed by this call
//   - err     : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     or context cancellation error
//
// Steps:
//  1. Validate that `source` and `sink` exist in nw (O(1)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V) for level and iterator slices plus recursion depth.
func Dinic(
	ctx context.Context,
	nw *Network,
	source, sink int,
	opts FlowOptions,
) (maxFlow int64, err error) {
	if err = checkTerminals(nw, source, sink); err != nil {
		return 0, err
	}

	level := make([]int, nw.Order())
	iter := make([]int, nw.Order())
	queue := make([]int, 0, nw.Order())

	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		// BFS to compute levels
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, id := range nw.adj[u] {
				e := &nw.edges[id]
				v := e.Other(u)
				if level[v] < 0 && e.Residual(u) > 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Blocking flow on the level graph
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dinicPush(nw, level, iter, source, sink, unbounded)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.Verbose {
				opts.logger().Debug("blocking flow push",
					"algorithm", AlgDinic,
					"pushed", pushed,
					"total", maxFlow)
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// dinicPush sends up to available units from u toward sink along edges
// that climb exactly one level, advancing iter[u] past exhausted edges.
// It returns the amount actually sent.
func dinicPush(nw *Network, level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		e := &nw.edges[nw.adj[u][iter[u]]]
		v := e.Other(u)
		if level[v] != level[u]+1 {
			continue
		}
		r := e.Residual(u)
		if r <= 0 {
			continue
		}
		pushed := dinicPush(nw, level, iter, v, sink, min(available, r))
		if pushed > 0 {
			e.push(u, pushed)
			return pushed
		}
	}
	return 0
}
