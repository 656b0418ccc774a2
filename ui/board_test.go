package ui

import (
	"bytes"
	"testing"

	"connect4/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func plainRenderer(buf *bytes.Buffer) *Renderer {
	return NewRenderer(buf, termenv.WithProfile(termenv.Ascii))
}

func TestRendererBoard(t *testing.T) {
	state, err := game.Replay(game.Config{Rows: 3, Cols: 4, ConnectN: 3}, []int{0, 1, 0})
	require.NoError(t, err)

	got := plainRenderer(&bytes.Buffer{}).Board(state.Board())
	require.Equal(t, ". . . .\nX . . .\nX O . .\n0 1 2 3\n", got)
}

func TestRendererOutcome(t *testing.T) {
	r := plainRenderer(&bytes.Buffer{})

	t.Run("running game", func(t *testing.T) {
		require.Equal(t, "", r.Outcome(game.NewStandardGameState()))
	})

	t.Run("winner", func(t *testing.T) {
		state, err := game.Replay(game.DefaultConfig(), []int{0, 1, 0, 1, 0, 1, 0})
		require.NoError(t, err)
		require.Equal(t, "Winner: RED", r.Outcome(state))
	})

	t.Run("draw", func(t *testing.T) {
		state, err := game.Replay(game.Config{Rows: 1, Cols: 3, ConnectN: 3}, []int{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, "Draw!", r.Outcome(state))
	})
}

func TestRendererPrint(t *testing.T) {
	var buf bytes.Buffer
	state, err := game.Replay(game.Config{Rows: 1, Cols: 3, ConnectN: 3}, []int{0, 1, 2})
	require.NoError(t, err)

	require.NoError(t, plainRenderer(&buf).Print(state))
	require.Equal(t, "X O X\n0 1 2\nDraw!\n", buf.String())
}
