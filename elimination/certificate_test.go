package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elimination/elimination"
)

func TestCertificateVerifyRejectsTampering(t *testing.T) {
	div := loadDivision(t, "teams4.txt")
	good := elimination.Certificate{
		Candidate: "Philadelphia",
		MaxWins:   83,
		Teams:     []string{"Atlanta", "New_York"},
		Wins:      161,
		Games:     6,
	}
	require.NoError(t, good.Verify(div))

	cases := map[string]func(c *elimination.Certificate){
		"unknown candidate": func(c *elimination.Certificate) { c.Candidate = "Boston" },
		"wrong max":         func(c *elimination.Certificate) { c.MaxWins = 90 },
		"unknown member":    func(c *elimination.Certificate) { c.Teams = []string{"Atlanta", "Boston"} },
		"candidate member":  func(c *elimination.Certificate) { c.Teams = []string{"Atlanta", "Philadelphia"} },
		"wrong totals":      func(c *elimination.Certificate) { c.Wins = 170 },
		"does not prove": func(c *elimination.Certificate) {
			c.Teams = []string{"New_York"}
			c.Wins, c.Games = 78, 0
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := good
			c.Teams = append([]string(nil), good.Teams...)
			mutate(&c)
			require.ErrorIs(t, c.Verify(div), elimination.ErrCertificateInvalid)
		})
	}
}

func TestCertificateString(t *testing.T) {
	c := elimination.Certificate{
		Candidate: "Philadelphia",
		MaxWins:   83,
		Teams:     []string{"Atlanta", "New_York"},
		Wins:      161,
		Games:     6,
	}
	require.Equal(t,
		"Philadelphia is eliminated by the subset R = { Atlanta New_York }: "+
			"they have won 161 games and play each other 6 more times, "+
			"so on average each finishes with 83.50 wins, more than Philadelphia's maximum of 83",
		c.String())

	single := elimination.Certificate{Candidate: "Montreal", MaxWins: 80, Teams: []string{"Atlanta"}, Wins: 83}
	require.Equal(t,
		"Montreal is eliminated by the subset R = { Atlanta }: "+
			"Atlanta has already won 83 games, more than Montreal's maximum of 80",
		single.String())

	require.False(t, elimination.Certificate{}.Proves())
}
