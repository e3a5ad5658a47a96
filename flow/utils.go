package flow

import "math"

// unbounded is the bottleneck seed for augmenting-path searches.
const unbounded int64 = math.MaxInt64

// checkTerminals validates that source and sink are distinct vertices of nw.
func checkTerminals(nw *Network, source, sink int) error {
	if !nw.has(source) {
		return ErrSourceNotFound
	}
	if !nw.has(sink) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSourceIsSink
	}
	return nil
}

// augment pushes delta along the path recorded in via, walking back from
// sink to source. via[v] is the index of the edge used to reach v.
// Complexity: O(path length).
func augment(nw *Network, via []int, source, sink int, delta int64) {
	for v := sink; v != source; {
		e := &nw.edges[via[v]]
		u := e.Other(v)
		e.push(u, delta)
		v = u
	}
}

// tracePath reconstructs the vertex sequence source→sink from via.
// Used only for verbose logging.
func tracePath(nw *Network, via []int, source, sink int) []int {
	path := []int{sink}
	for v := sink; v != source; {
		v = nw.edges[via[v]].Other(v)
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
