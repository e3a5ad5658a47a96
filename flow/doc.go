// Package flow implements maximum-flow algorithms on a compact, index-based
// flow network. It computes the maximum feasible integral flow from a source
// to a sink and exposes the residual network's minimum cut.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed.
//
//   - Memory: O(V) for the DFS stack and parent edges.
//
//   - Use when simplicity and small capacities suffice.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Memory: O(V) for parent edges and BFS queue.
//
//   - Guarantees polynomial worst-case behavior. This is the default.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V) for level and iterator slices.
//
//   - High practical performance on dense networks.
//
// # Network Representation
//
// A Network is an arena: vertices are the integers 0..n-1 and every edge is
// a single Edge record {From, To, Cap, Flow} stored in one slice. Each
// vertex's adjacency list holds edge indices for edges entering and leaving
// it, so the residual graph is implicit:
//
//	forward residual  From→To = Cap - Flow
//	reverse residual  To→From = Flow
//
// No reverse edge objects and no back-pointers exist. Self-loops are
// accepted and ignored by the solvers.
//
// Capacities and flows are int64 end to end; there is no floating-point
// arithmetic, so a computed flow can be compared to an integer total with ==.
//
// # API
//
//	nw := flow.NewNetwork(4)
//	nw.AddEdge(0, 1, 3)
//	...
//	f, err := flow.EdmondsKarp(ctx, nw, 0, 3, flow.DefaultOptions())
//	side := flow.MinCut(nw, 0)
//
// All solvers share the Solver signature and can be selected by name with
// Solve / SolverFor. They mutate Edge.Flow in place; Network.Reset clears it.
//
// # Errors
//
//	ErrSourceNotFound    - source is not a vertex.
//	ErrSinkNotFound      - sink is not a vertex.
//	ErrSourceIsSink      - source == sink.
//	ErrVertexOutOfRange  - AddEdge endpoint is not a vertex.
//	EdgeError            - AddEdge with a negative capacity.
//	ErrUnknownAlgorithm  - Solve with an unrecognised name.
//	context.Canceled / context.DeadlineExceeded - ctx is done between augmentations.
package flow
