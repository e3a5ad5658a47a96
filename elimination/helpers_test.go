package elimination_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elimination/elimination"
	"github.com/katalvlaran/elimination/standings"
)

// loadDivision reads the single division stored in ../testdata/<name>.
func loadDivision(t testing.TB, name string) *standings.Division {
	t.Helper()
	f, err := os.Open("../testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	d, err := standings.NewReader(f).Next()
	require.NoError(t, err)
	return d
}

// states maps team name → final state.
func states(res *elimination.Result) map[string]elimination.State {
	out := make(map[string]elimination.State, len(res.Verdicts))
	for _, v := range res.Verdicts {
		out[v.Team] = v.State
	}
	return out
}
