// Package elimination decides which teams of a division can no longer
// finish first, not even tied.
//
// Each team goes through two checks. The trivial check eliminates it when
// wins+remaining is below the current division lead. Otherwise a GameNetwork
// is built from the games left among the other teams and a max flow is
// computed; the team is eliminated iff the flow cannot carry every one of
// those games (F < TotalCapacity). Every eliminated team can be given a
// Certificate that proves the verdict without the solver.
//
// The Division is only read, and every check owns its network, so checks
// run concurrently with WithParallelism without changing the result.
package elimination

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/standings"
)

// IsTriviallyEliminated reports whether a team's best possible final total
// is already below the current division lead.
func IsTriviallyEliminated(wins, remaining, mostWins int) bool {
	return wins+remaining < mostWins
}

// Verdict is the outcome for one team.
type Verdict struct {
	Index   int
	Team    string
	State   State
	MaxWins int

	// MaxFlow and TotalCapacity are set only for flow-checked teams.
	MaxFlow       int64
	TotalCapacity int64

	// Certificate is set for eliminated teams when certificates are enabled.
	Certificate *Certificate
}

// Eliminated reports whether the team was eliminated for either reason.
func (v Verdict) Eliminated() bool { return v.State.IsEliminated() }

// Result is the outcome for a whole division.
type Result struct {
	// Verdicts holds one entry per team in division order.
	Verdicts []Verdict

	// Eliminated lists eliminated team names in division order.
	Eliminated []string

	// NetworksBuilt counts flow networks constructed; trivially
	// eliminated teams never get one.
	NetworksBuilt int
}

// IsEliminated reports whether the named team was eliminated.
func (r *Result) IsEliminated(name string) bool {
	v, ok := r.Verdict(name)
	return ok && v.Eliminated()
}

// Verdict returns the verdict for the named team.
func (r *Result) Verdict(name string) (Verdict, bool) {
	for _, v := range r.Verdicts {
		if v.Team == name {
			return v, true
		}
	}
	return Verdict{}, false
}

// Analyzer runs elimination checks with a fixed configuration.
// It holds no per-division state and may be reused and shared.
type Analyzer struct {
	cfg    config
	solver flow.Solver
}

// New returns an Analyzer configured by opts.
func New(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default().With(slog.String("component", "elimination"))
	}
	// WithAlgorithm already rejected unknown names.
	solver, _ := flow.SolverFor(cfg.algorithm)
	return &Analyzer{cfg: cfg, solver: solver}
}

// Analyze computes the verdict for every team of div.
func Analyze(ctx context.Context, div *standings.Division, opts ...Option) (*Result, error) {
	return New(opts...).Analyze(ctx, div)
}

// Analyze computes the verdict for every team of div.
func (a *Analyzer) Analyze(ctx context.Context, div *standings.Division) (*Result, error) {
	if a.cfg.strict {
		if err := div.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDivision, err)
		}
	}

	n := div.Len()
	mostWins := div.MostWins()
	verdicts := make([]Verdict, n)
	var built atomic.Int64

	check := func(ctx context.Context, t int) error {
		v, err := a.checkTeam(ctx, div, mostWins, t, &built)
		if err != nil {
			return fmt.Errorf("elimination: team %q: %w", div.Team(t).Name, err)
		}
		verdicts[t] = v
		return nil
	}

	if a.cfg.parallelism > 1 && n > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.cfg.parallelism)
		for t := 0; t < n; t++ {
			t := t
			g.Go(func() error { return check(gctx, t) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for t := 0; t < n; t++ {
			if err := check(ctx, t); err != nil {
				return nil, err
			}
		}
	}

	res := &Result{Verdicts: verdicts, NetworksBuilt: int(built.Load())}
	for _, v := range verdicts {
		if v.Eliminated() {
			res.Eliminated = append(res.Eliminated, v.Team)
		}
	}
	a.cfg.logger.Debug("division analyzed",
		"teams", n,
		"eliminated", len(res.Eliminated),
		"networks", res.NetworksBuilt)
	return res, nil
}

// checkTeam runs both checks for team t. div and mostWins are read-only
// inputs; the only shared write is the built counter.
func (a *Analyzer) checkTeam(
	ctx context.Context,
	div *standings.Division,
	mostWins, t int,
	built *atomic.Int64,
) (Verdict, error) {
	team := div.Team(t)
	v := Verdict{Index: t, Team: team.Name, State: Unchecked, MaxWins: team.MaxWins()}

	var err error
	if IsTriviallyEliminated(team.Wins, team.Remaining, mostWins) {
		if v.State, err = v.State.Transition(TriviallyEliminated); err != nil {
			return v, err
		}
		if a.cfg.certificates {
			v.Certificate = newCertificate(div, t, []int{div.Leader()})
		}
		a.cfg.logger.Debug("trivially eliminated",
			"team", team.Name, "max_wins", v.MaxWins, "most_wins", mostWins)
		return v, nil
	}
	if v.State, err = v.State.Transition(FlowEligible); err != nil {
		return v, err
	}

	gn, err := BuildNetwork(div, t)
	if err != nil {
		return v, err
	}
	built.Add(1)
	if a.cfg.onBuild != nil {
		a.cfg.onBuild(t)
	}

	opts := flow.FlowOptions{Verbose: a.cfg.verboseFlow, Logger: a.cfg.logger}
	f, err := a.solver(ctx, gn.Network, gn.Source, gn.Sink, opts)
	if err != nil {
		return v, err
	}
	v.MaxFlow, v.TotalCapacity = f, gn.TotalCapacity

	next := NotEliminated
	if f < gn.TotalCapacity {
		next = Eliminated
	}
	if v.State, err = v.State.Transition(next); err != nil {
		return v, err
	}
	if v.State == Eliminated && a.cfg.certificates {
		v.Certificate = newCertificate(div, t, gn.CutTeams())
	}
	a.cfg.logger.Debug("flow checked",
		"team", team.Name,
		"state", v.State,
		"max_flow", f,
		"total_capacity", gn.TotalCapacity,
		"algorithm", a.cfg.algorithm)
	return v, nil
}
