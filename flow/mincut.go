package flow

// MinCut returns the source side of a minimum cut after a max-flow run:
// side[v] is true iff v is reachable from source in the residual network.
// By max-flow/min-cut duality the capacity of the edges leaving this set
// equals the maximum flow.
// Complexity: O(V + E).
func MinCut(nw *Network, source int) []bool {
	side := make([]bool, nw.Order())
	if !nw.has(source) {
		return side
	}
	side[source] = true
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, id := range nw.adj[u] {
			e := &nw.edges[id]
			v := e.Other(u)
			if side[v] || e.Residual(u) <= 0 {
				continue
			}
			side[v] = true
			queue = append(queue, v)
		}
	}
	return side
}

// CutCapacity sums the capacities of edges crossing from side to its
// complement.
func CutCapacity(nw *Network, side []bool) int64 {
	var total int64
	for i := range nw.edges {
		e := &nw.edges[i]
		if side[e.From] && !side[e.To] {
			total += e.Cap
		}
	}
	return total
}
