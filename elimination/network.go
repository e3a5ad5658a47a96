package elimination

import (
	"fmt"

	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/standings"
)

// GameNetwork is the flow network for one candidate team.
//
// Vertex layout, with n teams and m = C(n-1, 2) game vertices:
//
//	0                 source
//	1 .. m            one game vertex per pair {i, j}, i < j, neither the candidate
//	m+1 .. m+n-1      one team vertex per team except the candidate
//	m+n               sink
//
// Edges:
//
//	source → game{i,j}    capacity Games(i, j)
//	game{i,j} → team(i)   capacity Unbounded
//	game{i,j} → team(j)   capacity Unbounded
//	team(k) → sink        capacity max(0, candidate.MaxWins() - k.Wins)
//
// A GameNetwork is built for a single check and discarded afterwards.
type GameNetwork struct {
	Network *flow.Network

	Source, Sink int
	Candidate    int

	// TotalCapacity is the sum of source edge capacities: the games left
	// among the teams other than the candidate.
	TotalCapacity int64

	// Unbounded is the finite stand-in for infinite game→team capacity.
	Unbounded int64

	pairs      [][2]int // pairs[v-1] is the team pair of game vertex v
	teamVertex []int    // team index → vertex, -1 for the candidate
}

// BuildNetwork constructs the GameNetwork for candidate in div.
// Complexity: O(n²) vertices and edges.
func BuildNetwork(div *standings.Division, candidate int) (*GameNetwork, error) {
	n := div.Len()
	if candidate < 0 || candidate >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrCandidateOutOfRange, candidate, n)
	}

	others := n - 1
	games := others * (others - 1) / 2
	gn := &GameNetwork{
		Network:    flow.NewNetwork(games + others + 2),
		Source:     0,
		Sink:       games + others + 1,
		Candidate:  candidate,
		Unbounded:  int64(div.TotalGames()) + 1,
		pairs:      make([][2]int, 0, games),
		teamVertex: make([]int, n),
	}

	next := games + 1
	for i := 0; i < n; i++ {
		if i == candidate {
			gn.teamVertex[i] = -1
			continue
		}
		gn.teamVertex[i] = next
		next++
	}

	vertex := 1
	for i := 0; i < n; i++ {
		if i == candidate {
			continue
		}
		for j := i + 1; j < n; j++ {
			if j == candidate {
				continue
			}
			g := int64(div.Games(i, j))
			// Zero-capacity edges are kept so every pair has its vertex.
			if _, err := gn.Network.AddEdge(gn.Source, vertex, g); err != nil {
				return nil, err
			}
			if _, err := gn.Network.AddEdge(vertex, gn.teamVertex[i], gn.Unbounded); err != nil {
				return nil, err
			}
			if _, err := gn.Network.AddEdge(vertex, gn.teamVertex[j], gn.Unbounded); err != nil {
				return nil, err
			}
			gn.pairs = append(gn.pairs, [2]int{i, j})
			gn.TotalCapacity += g
			vertex++
		}
	}

	best := div.Team(candidate).MaxWins()
	for k := 0; k < n; k++ {
		if k == candidate {
			continue
		}
		room := max(0, best-div.Team(k).Wins)
		if _, err := gn.Network.AddEdge(gn.teamVertex[k], gn.Sink, int64(room)); err != nil {
			return nil, err
		}
	}
	return gn, nil
}

// GameVertices returns the number of game vertices.
func (gn *GameNetwork) GameVertices() int { return len(gn.pairs) }

// GamePair returns the teams behind game vertex v.
func (gn *GameNetwork) GamePair(v int) (i, j int, ok bool) {
	if v < 1 || v > len(gn.pairs) {
		return 0, 0, false
	}
	p := gn.pairs[v-1]
	return p[0], p[1], true
}

// TeamVertex returns the vertex of team i, or -1 for the candidate.
func (gn *GameNetwork) TeamVertex(i int) int { return gn.teamVertex[i] }

// CutTeams returns, in index order, the teams whose vertices lie on the
// source side of the residual min cut. Valid after a max-flow run.
func (gn *GameNetwork) CutTeams() []int {
	side := flow.MinCut(gn.Network, gn.Source)
	var out []int
	for i, v := range gn.teamVertex {
		if v >= 0 && side[v] {
			out = append(out, i)
		}
	}
	return out
}
