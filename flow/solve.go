package flow

import (
	"context"
	"fmt"
)

// Solver is the common signature of EdmondsKarp, FordFulkerson and Dinic.
type Solver func(ctx context.Context, nw *Network, source, sink int, opts FlowOptions) (int64, error)

// SolverFor returns the Solver implementing alg.
func SolverFor(alg Algorithm) (Solver, error) {
	switch alg {
	case AlgEdmondsKarp, "":
		return EdmondsKarp, nil
	case AlgFordFulkerson:
		return FordFulkerson, nil
	case AlgDinic:
		return Dinic, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Solve runs the named algorithm on nw.
func Solve(
	ctx context.Context,
	alg Algorithm,
	nw *Network,
	source, sink int,
	opts FlowOptions,
) (int64, error) {
	solver, err := SolverFor(alg)
	if err != nil {
		return 0, err
	}
	return solver(ctx, nw, source, sink, opts)
}
