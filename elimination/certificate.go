package elimination

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/elimination/standings"
)

// Certificate is a solver-free proof that Candidate is eliminated.
//
// The teams in Teams have already won Wins games and still play Games games
// among themselves, so together they finish with at least Wins+Games wins.
// If that exceeds len(Teams)·MaxWins, at least one of them must finish above
// the candidate's best possible total.
type Certificate struct {
	Candidate string
	MaxWins   int
	Teams     []string
	Wins      int
	Games     int
}

// Proves reports whether the certificate's own numbers establish elimination.
func (c Certificate) Proves() bool {
	return len(c.Teams) > 0 && c.Wins+c.Games > len(c.Teams)*c.MaxWins
}

// Verify recomputes the certificate against div and checks that it proves
// elimination. It never runs a max-flow computation.
func (c Certificate) Verify(div *standings.Division) error {
	ci, ok := div.Index(c.Candidate)
	if !ok {
		return fmt.Errorf("%w: unknown candidate %q", ErrCertificateInvalid, c.Candidate)
	}
	if got := div.Team(ci).MaxWins(); got != c.MaxWins {
		return fmt.Errorf("%w: max wins %d, division says %d", ErrCertificateInvalid, c.MaxWins, got)
	}

	idx := make([]int, 0, len(c.Teams))
	wins := 0
	for _, name := range c.Teams {
		i, ok := div.Index(name)
		if !ok || i == ci {
			return fmt.Errorf("%w: bad subset member %q", ErrCertificateInvalid, name)
		}
		idx = append(idx, i)
		wins += div.Team(i).Wins
	}
	games := div.GamesAmong(idx)
	if wins != c.Wins || games != c.Games {
		return fmt.Errorf("%w: subset totals %d+%d, division says %d+%d",
			ErrCertificateInvalid, c.Wins, c.Games, wins, games)
	}
	if !c.Proves() {
		return fmt.Errorf("%w: %d+%d ≤ %d×%d", ErrCertificateInvalid, c.Wins, c.Games, len(c.Teams), c.MaxWins)
	}
	return nil
}

// String renders the human-readable certificate of elimination.
func (c Certificate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is eliminated by the subset R = { %s }", c.Candidate, strings.Join(c.Teams, " "))
	if len(c.Teams) == 1 {
		fmt.Fprintf(&b, ": %s has already won %d games, more than %s's maximum of %d",
			c.Teams[0], c.Wins, c.Candidate, c.MaxWins)
		return b.String()
	}
	avg := float64(c.Wins+c.Games) / float64(len(c.Teams))
	fmt.Fprintf(&b, ": they have won %d games and play each other %d more times, "+
		"so on average each finishes with %.2f wins, more than %s's maximum of %d",
		c.Wins, c.Games, avg, c.Candidate, c.MaxWins)
	return b.String()
}

// newCertificate totals the subset's wins and mutual games from div.
func newCertificate(div *standings.Division, candidate int, subset []int) *Certificate {
	c := &Certificate{
		Candidate: div.Team(candidate).Name,
		MaxWins:   div.Team(candidate).MaxWins(),
		Teams:     make([]string, len(subset)),
		Games:     div.GamesAmong(subset),
	}
	for k, i := range subset {
		c.Teams[k] = div.Team(i).Name
		c.Wins += div.Team(i).Wins
	}
	return c
}
