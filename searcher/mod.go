package searcher

import (
	"errors"

	"connect4/game"
)

var (
	ErrNoLegalMoves  = errors.New("no legal moves from root position")
	ErrInvalidBudget = errors.New("iteration budget must be at least 1")
)

// Scoring selects whose wins a node counts during backpropagation.
type Scoring int

const (
	// RootPerspective credits every node on the path when the player to move at
	// the search root wins the rollout.
	RootPerspective Scoring = iota
	// MoverPerspective credits each node when the player who made the move into
	// that node wins; draws score DRAW.
	MoverPerspective
)

func (s Scoring) String() string {
	switch s {
	case RootPerspective:
		return "root"
	case MoverPerspective:
		return "mover"
	default:
		return "unknown"
	}
}

// ParseScoring maps "root" or "mover" to a Scoring.
func ParseScoring(name string) (Scoring, bool) {
	switch name {
	case "root":
		return RootPerspective, true
	case "mover":
		return MoverPerspective, true
	default:
		return RootPerspective, false
	}
}

// ChildStats summarises one expanded root move.
type ChildStats struct {
	Move   int
	Visits int
	Wins   float64
}

// Result is the outcome of one search.
type Result struct {
	Move       int         // column with the most visits
	Player     game.Player // player to move at the root
	Iterations int
	Children   []ChildStats // in expansion order
}

// Policy returns the visit share of each expanded root move.
func (r Result) Policy() map[int]float64 {
	total := 0
	for _, c := range r.Children {
		total += c.Visits
	}
	policy := make(map[int]float64, len(r.Children))
	if total == 0 {
		return policy
	}
	for _, c := range r.Children {
		policy[c.Move] = float64(c.Visits) / float64(total)
	}
	return policy
}
