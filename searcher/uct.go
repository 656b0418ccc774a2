package searcher

import "math"

// Hyperparameters for MCTS

const WIN = 1.0  // Reward for a rollout won from the node's perspective
const DRAW = 0.5 // Reward for a drawn rollout under MoverPerspective
const LOSS = 0.0 // Reward for every other outcome

type uct struct {
	c   float64
	lnN float64
}

func newUCT(c float64, N int) uct {
	return uct{c: c, lnN: math.Log(float64(N))}
}

// evaluate returns +Inf for unvisited children so each is tried once before any comparison.
func (u uct) evaluate(wins float64, visits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	// UCT = w/n + c*sqrt(ln(N)/n)
	exploitation := wins / float64(visits)
	exploration := u.c * math.Sqrt(u.lnN/float64(visits))
	return exploitation + exploration
}
