package elimination

import (
	"log/slog"

	"github.com/katalvlaran/elimination/flow"
)

// Option customizes an Analyzer.
// Option constructors panic on meaningless input; Analyze itself never panics.
type Option func(*config)

type config struct {
	algorithm    flow.Algorithm
	parallelism  int
	certificates bool
	strict       bool
	verboseFlow  bool
	logger       *slog.Logger
	onBuild      func(candidate int)
}

func defaultConfig() config {
	return config{
		algorithm:   flow.AlgEdmondsKarp,
		parallelism: 1,
	}
}

// WithAlgorithm selects the max-flow algorithm (default Edmonds–Karp).
func WithAlgorithm(alg flow.Algorithm) Option {
	if _, err := flow.SolverFor(alg); err != nil {
		panic("elimination: WithAlgorithm(" + string(alg) + ")")
	}
	return func(c *config) { c.algorithm = alg }
}

// WithParallelism checks up to n teams concurrently. 1 means sequential.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("elimination: WithParallelism(n < 1)")
	}
	return func(c *config) { c.parallelism = n }
}

// WithCertificates attaches a Certificate to every eliminated team's Verdict.
func WithCertificates(on bool) Option {
	return func(c *config) { c.certificates = on }
}

// WithStrictValidation makes Analyze reject divisions that fail
// standings.Division.Validate instead of computing on them.
func WithStrictValidation(on bool) Option {
	return func(c *config) { c.strict = on }
}

// WithVerboseFlow logs every augmenting path at debug level.
func WithVerboseFlow(on bool) Option {
	return func(c *config) { c.verboseFlow = on }
}

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("elimination: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithBuildHook registers fn to be called with the candidate index each
// time a flow network is built. fn must be safe for concurrent use when
// parallelism is above 1.
func WithBuildHook(fn func(candidate int)) Option {
	if fn == nil {
		panic("elimination: WithBuildHook(nil)")
	}
	return func(c *config) { c.onBuild = fn }
}
