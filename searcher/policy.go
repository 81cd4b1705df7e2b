package searcher

import (
	"math"

	"othello/game"
)

type uct struct {
	numerator float64
}

// newUCT prepares the exploration term for children whose total simulation
// count is N.
func newUCT(cSquared float64, N float64) uct {
	return uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	// Prioritize unexplored nodes
	if n == 0 {
		return math.Inf(1)
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	n += DivDelta
	return q/n + math.Sqrt(u.numerator/n)
}

// Candidate holds the statistics gathered for one root move.
type Candidate struct {
	Move   game.Point
	Wins   int
	Visits int
}

// Value is the empirical win rate used to pick the final move.
func (c Candidate) Value() float64 {
	return float64(c.Wins) / (float64(c.Visits) + DivDelta)
}

// Policy lists the root moves in expansion order.
type Policy []Candidate

func (t *tree) policy() Policy {
	root := t.root()
	if len(root.children) == 0 {
		panic("root has no children")
	}

	policy := make(Policy, 0, len(root.children))
	for _, c := range root.children {
		child := &t.nodes[c]
		if child.move.Pass {
			continue
		}
		policy = append(policy, Candidate{
			Move:   child.move.Point,
			Wins:   child.wins,
			Visits: child.visits,
		})
	}
	return policy
}
