package agent

import (
	"context"
	"fmt"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type Agent interface {
	// FindMove returns the column to play and the search metrics (if collected)
	FindMove(ctx context.Context, state *game.GameState) (int, metrics.SearchMetric, error)
}

// ChooseMove searches a fresh tree rooted at a copy of state and returns the most
// visited column. Extra options tune the search; nothing is kept between calls.
func ChooseMove(state *game.GameState, iterations int, options ...searcher.Option) (int, error) {
	if iterations < 1 {
		return -1, fmt.Errorf("choose move with %d iterations: %w", iterations, searcher.ErrInvalidBudget)
	}
	options = append([]searcher.Option{searcher.WithIterations(iterations)}, options...)
	return searcher.NewMCTS(options...).Search(context.Background(), state.Copy())
}
