// Package standings holds the division data model: teams with their current
// wins and remaining games, and the symmetric matrix of games left between
// each pair of teams. It also reads divisions from the whitespace-delimited
// text format
//
//	<n>
//	<name_1> <wins_1> <remaining_1> <G[1][1]> ... <G[1][n]>
//	...
//	<name_n> <wins_n> <remaining_n> <G[n][1]> ... <G[n][n]>
//
// A Division is read-only once constructed; every accessor returns copies or
// scalars so it can be shared across goroutines without locking.
package standings

import "fmt"

// Team is one division member.
type Team struct {
	// Name is unique within a division and contains no whitespace.
	Name string

	// Wins is the number of games won so far.
	Wins int

	// Remaining is the total number of games left against division rivals.
	Remaining int
}

// MaxWins is the best possible final win total: Wins + Remaining.
func (t Team) MaxWins() int { return t.Wins + t.Remaining }

// Division is an ordered set of teams plus the games-remaining matrix.
// Team order is the canonical index used by every other package.
type Division struct {
	teams []Team
	games [][]int
	index map[string]int
}

// NewDivision copies teams and games into a new Division.
//
// Only shape, negativity and name uniqueness are enforced here; use
// Validate for symmetry and row-sum consistency.
func NewDivision(teams []Team, games [][]int) (*Division, error) {
	n := len(teams)
	if n == 0 {
		return nil, ErrEmptyDivision
	}
	if len(games) != n {
		return nil, fmt.Errorf("%w: %d rows for %d teams", ErrShape, len(games), n)
	}

	d := &Division{
		teams: make([]Team, n),
		games: make([][]int, n),
		index: make(map[string]int, n),
	}
	copy(d.teams, teams)
	for i, t := range teams {
		if _, dup := d.index[t.Name]; dup {
			return nil, &ValidationError{I: i, J: -1, Err: fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)}
		}
		if t.Wins < 0 || t.Remaining < 0 {
			return nil, &ValidationError{I: i, J: -1, Err: ErrNegative}
		}
		d.index[t.Name] = i

		if len(games[i]) != n {
			return nil, &ValidationError{I: i, J: -1, Err: fmt.Errorf("%w: row has %d columns", ErrShape, len(games[i]))}
		}
		d.games[i] = make([]int, n)
		for j, g := range games[i] {
			if g < 0 {
				return nil, &ValidationError{I: i, J: j, Err: ErrNegative}
			}
			d.games[i][j] = g
		}
	}
	return d, nil
}

// Len returns the number of teams.
func (d *Division) Len() int { return len(d.teams) }

// Team returns the team at index i.
func (d *Division) Team(i int) Team { return d.teams[i] }

// Teams returns a copy of all teams in canonical order.
func (d *Division) Teams() []Team {
	out := make([]Team, len(d.teams))
	copy(out, d.teams)
	return out
}

// Names returns the team names in canonical order.
func (d *Division) Names() []string {
	out := make([]string, len(d.teams))
	for i, t := range d.teams {
		out[i] = t.Name
	}
	return out
}

// Index returns the index of the named team.
func (d *Division) Index(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Games returns the number of games left between teams i and j.
func (d *Division) Games(i, j int) int { return d.games[i][j] }

// MostWins returns the highest current win total in the division.
func (d *Division) MostWins() int {
	most := 0
	for _, t := range d.teams {
		if t.Wins > most {
			most = t.Wins
		}
	}
	return most
}

// Leader returns the index of the first team holding MostWins.
func (d *Division) Leader() int {
	best := 0
	for i, t := range d.teams {
		if t.Wins > d.teams[best].Wins {
			best = i
		}
	}
	return best
}

// TotalGames returns the number of games left in the whole division,
// counting each pair once from the upper triangle.
func (d *Division) TotalGames() int {
	total := 0
	for i := range d.games {
		for j := i + 1; j < len(d.games); j++ {
			total += d.games[i][j]
		}
	}
	return total
}

// GamesAmong returns the number of games left among the given teams,
// counting each unordered pair once.
func (d *Division) GamesAmong(indices []int) int {
	total := 0
	for a := 0; a < len(indices); a++ {
		for b := a + 1; b < len(indices); b++ {
			total += d.games[indices[a]][indices[b]]
		}
	}
	return total
}

// Validate checks the structural invariants the elimination check relies on:
// zero diagonal, symmetric games, and Remaining equal to each row sum.
// The first violation found is returned as a *ValidationError.
func (d *Division) Validate() error {
	for i, row := range d.games {
		if row[i] != 0 {
			return &ValidationError{I: i, J: i, Err: ErrDiagonal}
		}
		sum := 0
		for j, g := range row {
			if g != d.games[j][i] {
				return &ValidationError{I: i, J: j, Err: ErrAsymmetric}
			}
			sum += g
		}
		if sum != d.teams[i].Remaining {
			return &ValidationError{I: i, J: -1, Err: fmt.Errorf("%w: remaining %d, row sum %d",
				ErrInconsistentRemaining, d.teams[i].Remaining, sum)}
		}
	}
	return nil
}
