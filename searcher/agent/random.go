package agent

import (
	"context"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal column.
func NewRandomAgent(seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state *game.GameState) (int, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return -1, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	moves := state.LegalMoves()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
