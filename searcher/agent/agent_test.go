package agent

import (
	"context"
	"testing"

	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

func TestChooseMove(t *testing.T) {
	t.Run("plays the winning column", func(t *testing.T) {
		state, err := game.Replay(game.DefaultConfig(), []int{3, 0, 3, 0, 3, 0})
		require.NoError(t, err)

		move, err := ChooseMove(state, 2000, searcher.WithSeed(17))
		require.NoError(t, err)
		require.Equal(t, 3, move)
		require.Len(t, state.History(), 6, "Caller's state should not change")
	})

	t.Run("rejects an empty budget", func(t *testing.T) {
		_, err := ChooseMove(game.NewStandardGameState(), 0)
		require.ErrorIs(t, err, searcher.ErrInvalidBudget)
	})

	t.Run("rejects a finished game", func(t *testing.T) {
		state, err := game.Replay(game.DefaultConfig(), []int{0, 1, 0, 1, 0, 1, 0})
		require.NoError(t, err)

		_, err = ChooseMove(state, 100)
		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	})

	t.Run("seeded calls agree", func(t *testing.T) {
		state, err := game.Replay(game.DefaultConfig(), []int{3, 2})
		require.NoError(t, err)

		first, err := ChooseMove(state, 300, searcher.WithSeed(8))
		require.NoError(t, err)
		second, err := ChooseMove(state, 300, searcher.WithSeed(8))
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestEvaluationAgent(t *testing.T) {
	a := NewEvaluationAgent(searcher.NewMCTS(searcher.WithSeed(4), searcher.WithIterations(100), searcher.WithMetrics()))

	move, metric, err := a.FindMove(context.Background(), game.NewStandardGameState())
	require.NoError(t, err)
	require.Contains(t, game.NewStandardGameState().LegalMoves(), move)
	require.Equal(t, 100, metric.Iterations)
}

func TestFindMax(t *testing.T) {
	require.Equal(t, 2, findMax(map[int]float64{0: 0.2, 2: 0.5, 5: 0.3}, 0))
	require.Equal(t, 5, findMax(map[int]float64{1: 0.5, 5: 0.5}, 5), "Ties should keep the fallback")
}

func TestRandomAgent(t *testing.T) {
	a := NewRandomAgent(99)
	state, err := game.Replay(game.DefaultConfig(), []int{0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		move, _, err := a.FindMove(context.Background(), state)
		require.NoError(t, err)
		require.NotEqual(t, 0, move, "Full column should never be chosen")
	}

	finished, err := game.Replay(game.DefaultConfig(), []int{0, 1, 0, 1, 0, 1, 0})
	require.NoError(t, err)
	_, _, err = a.FindMove(context.Background(), finished)
	require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
}
