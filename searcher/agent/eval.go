package agent

import (
	"context"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the most visited move of each search.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state *game.GameState) (int, metrics.SearchMetric, error) {
	result, metric, err := a.mcts.Simulate(ctx, state)
	if err != nil {
		return -1, metric, err
	}
	return findMax(result.Policy(), result.Move), metric, nil
}

// findMax returns the move with the largest policy share, preferring fallback on ties.
func findMax(policy map[int]float64, fallback int) int {
	maxMove := fallback
	maxVisit := policy[fallback]
	for move, visit := range policy {
		if visit > maxVisit {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
