package flow

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrSourceIsSink is returned when source and sink are the same vertex.
var ErrSourceIsSink = errors.New("flow: source and sink are the same vertex")

// ErrVertexOutOfRange is returned by AddEdge when an endpoint is not a vertex
// of the network.
var ErrVertexOutOfRange = errors.New("flow: vertex out of range")

// ErrUnknownAlgorithm is returned by Solve and ParseAlgorithm for an
// unrecognised algorithm name.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Verbose: if true, logs each augmentation at debug level.
//   - Logger: destination for Verbose output (nil uses slog.Default()).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Verbose              bool
	Logger               *slog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: quiet, default logger,
// Dinic rebuilds its level graph only when a phase is exhausted.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

func (o FlowOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Algorithm names a max-flow strategy.
type Algorithm string

const (
	// AlgEdmondsKarp uses breadth-first (shortest) augmenting paths.
	AlgEdmondsKarp Algorithm = "edmonds-karp"
	// AlgFordFulkerson uses depth-first augmenting paths.
	AlgFordFulkerson Algorithm = "ford-fulkerson"
	// AlgDinic uses level graphs and blocking flows.
	AlgDinic Algorithm = "dinic"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgEdmondsKarp, AlgFordFulkerson, AlgDinic}
}

// ParseAlgorithm maps a name to an Algorithm. The empty string selects
// Edmonds–Karp.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return AlgEdmondsKarp, nil
	}
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
