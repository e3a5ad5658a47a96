package flow

// Edge is a single capacitated arc of a Network.
//
// An Edge carries both halves of its residual pair: the forward residual
// Cap-Flow (From→To) and the reverse residual Flow (To→From). Solvers
// address edges by index, so neither half needs a pointer to the other.
type Edge struct {
	// From is the tail vertex.
	From int

	// To is the head vertex.
	To int

	// Cap is the non-negative capacity.
	Cap int64

	// Flow is the amount currently pushed From→To, 0 ≤ Flow ≤ Cap.
	Flow int64
}

// Residual returns the capacity still available on the edge when it is
// traversed starting at vertex v: forward residual if v is the tail,
// the give-back amount if v is the head.
func (e Edge) Residual(v int) int64 {
	if v == e.From {
		return e.Cap - e.Flow
	}
	return e.Flow
}

// Other returns the endpoint opposite v.
func (e Edge) Other(v int) int {
	if v == e.From {
		return e.To
	}
	return e.From
}

// push sends delta units across the edge starting at v.
// Leaving the tail adds flow; leaving the head cancels flow.
func (e *Edge) push(v int, delta int64) {
	if v == e.From {
		e.Flow += delta
		return
	}
	e.Flow -= delta
}

// Network is an arena-backed directed flow network.
//
// Vertices are the integers 0..Order()-1. Every edge lives once in the
// edges slice; adj[v] lists the indices of all edges incident to v in
// either direction, which is exactly the residual neighbourhood of v.
//
// A Network is not safe for concurrent mutation. Build one per goroutine.
type Network struct {
	edges []Edge
	adj   [][]int
}

// NewNetwork returns an empty network with n vertices and no edges.
// Complexity: O(n).
func NewNetwork(n int) *Network {
	if n < 0 {
		n = 0
	}
	return &Network{adj: make([][]int, n)}
}

// Order returns the number of vertices.
func (nw *Network) Order() int { return len(nw.adj) }

// Size returns the number of edges.
func (nw *Network) Size() int { return len(nw.edges) }

// AddEdge appends a From→To edge with the given capacity and returns its index.
// Zero capacity is legal. Negative capacity yields EdgeError; unknown
// endpoints yield ErrVertexOutOfRange.
// Complexity: amortised O(1).
func (nw *Network) AddEdge(from, to int, capacity int64) (int, error) {
	if !nw.has(from) || !nw.has(to) {
		return -1, ErrVertexOutOfRange
	}
	if capacity < 0 {
		return -1, EdgeError{From: from, To: to, Cap: capacity}
	}
	id := len(nw.edges)
	nw.edges = append(nw.edges, Edge{From: from, To: to, Cap: capacity})
	nw.adj[from] = append(nw.adj[from], id)
	if to != from {
		nw.adj[to] = append(nw.adj[to], id)
	}
	return id, nil
}

// Edge returns a copy of the edge with index id.
func (nw *Network) Edge(id int) Edge { return nw.edges[id] }

// Edges returns a copy of all edges in insertion order.
func (nw *Network) Edges() []Edge {
	out := make([]Edge, len(nw.edges))
	copy(out, nw.edges)
	return out
}

// OutCapacity returns the total capacity of edges leaving v.
func (nw *Network) OutCapacity(v int) int64 {
	var total int64
	for _, id := range nw.adj[v] {
		if nw.edges[id].From == v {
			total += nw.edges[id].Cap
		}
	}
	return total
}

// FlowValue returns the net flow leaving v.
func (nw *Network) FlowValue(v int) int64 {
	var net int64
	for _, id := range nw.adj[v] {
		e := &nw.edges[id]
		if e.From == e.To {
			continue
		}
		if e.From == v {
			net += e.Flow
		} else {
			net -= e.Flow
		}
	}
	return net
}

// Reset zeroes the flow on every edge, keeping capacities.
func (nw *Network) Reset() {
	for i := range nw.edges {
		nw.edges[i].Flow = 0
	}
}

func (nw *Network) has(v int) bool { return v >= 0 && v < len(nw.adj) }
