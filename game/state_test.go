package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGameStateApplyMove(t *testing.T) {
	t.Run("alternates players and records history", func(t *testing.T) {
		gs := NewStandardGameState()

		require.NoError(t, gs.ApplyMove(3))
		require.Equal(t, PlayerB, gs.Player())
		require.NoError(t, gs.ApplyMove(3))
		require.Equal(t, PlayerA, gs.Player())

		require.Equal(t, []Move{{Row: 5, Col: 3, Player: PlayerA}, {Row: 4, Col: 3, Player: PlayerB}}, gs.History())
	})

	t.Run("rejected moves leave the state unchanged", func(t *testing.T) {
		gs, err := Replay(DefaultConfig(), []int{0, 0, 0, 0, 0, 0, 1})
		require.NoError(t, err)
		before := gs.Copy()

		err = gs.ApplyMove(0)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, err, ErrColumnFull)

		err = gs.ApplyMove(7)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, err, ErrColumnOutOfRange)

		err = gs.ApplyMove(-3)
		require.ErrorIs(t, err, ErrColumnOutOfRange)

		require.Equal(t, before, gs, "Board, history and player should be untouched")
	})
}

func TestGameStateUndo(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		gs := NewStandardGameState()
		require.ErrorIs(t, gs.Undo(), ErrEmptyHistory)
		require.Equal(t, PlayerA, gs.Player())
	})

	t.Run("turn returns to the mover of the undone move", func(t *testing.T) {
		gs, err := Replay(DefaultConfig(), []int{2, 4, 2})
		require.NoError(t, err)

		require.NoError(t, gs.Undo())
		require.Equal(t, PlayerA, gs.Player())
		require.Equal(t, Empty, gs.CellAt(4, 2))
		require.Len(t, gs.History(), 2)

		require.NoError(t, gs.Undo())
		require.Equal(t, PlayerB, gs.Player())
		require.Equal(t, Empty, gs.CellAt(5, 4))
	})

	t.Run("undo after apply restores the previous position", func(t *testing.T) {
		gs, err := Replay(DefaultConfig(), []int{3, 3, 4})
		require.NoError(t, err)
		before := gs.Copy()

		require.NoError(t, gs.ApplyMove(5))
		require.NoError(t, gs.Undo())
		require.Equal(t, before.Board(), gs.Board())
		require.Equal(t, before.History(), gs.History())
		require.Equal(t, before.Player(), gs.Player())
	})
}

func TestGameStateReplayRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		gs := NewStandardGameState()
		columns := []int{}
		for !gs.IsTerminal() {
			moves := gs.LegalMoves()
			col := moves[r.Intn(len(moves))]
			require.NoError(t, gs.ApplyMove(col))
			columns = append(columns, col)

			board := gs.Board()
			require.Equal(t, len(gs.History()), board.Count(), "History length should match occupied cells")
		}

		replayed, err := Replay(DefaultConfig(), columns)
		require.NoError(t, err)
		require.Equal(t, gs.Board(), replayed.Board(), "Replaying history should reproduce the board")
		require.Equal(t, gs.Hash(), replayed.Hash())
	}
}

func TestGameStateTerminal(t *testing.T) {
	t.Run("win ends the game", func(t *testing.T) {
		gs, err := Replay(DefaultConfig(), []int{0, 1, 0, 1, 0, 1, 0})
		require.NoError(t, err)

		require.True(t, gs.IsTerminal())
		winner, won := gs.Winner()
		require.True(t, won)
		require.Equal(t, PlayerA, winner)
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		gs, err := Replay(Config{Rows: 1, Cols: 3, ConnectN: 3}, []int{0, 1, 2})
		require.NoError(t, err)

		require.Empty(t, gs.LegalMoves())
		require.True(t, gs.IsTerminal())
		_, won := gs.Winner()
		require.False(t, won)
	})

	t.Run("fresh game is not terminal", func(t *testing.T) {
		require.False(t, NewStandardGameState().IsTerminal())
	})
}

func TestGameStateCopy(t *testing.T) {
	gs, err := Replay(DefaultConfig(), []int{1, 2})
	require.NoError(t, err)

	c := gs.Copy()
	require.NoError(t, c.ApplyMove(6))

	require.Len(t, gs.History(), 2, "Original history should not see the copy's move")
	require.Equal(t, Empty, gs.CellAt(5, 6), "Original board should not see the copy's move")
	require.Equal(t, PlayerA, gs.Player())
}

func TestGameStateHash(t *testing.T) {
	a, err := Replay(DefaultConfig(), []int{0, 1, 2})
	require.NoError(t, err)
	b, err := Replay(DefaultConfig(), []int{2, 1, 0})
	require.NoError(t, err)
	c, err := Replay(DefaultConfig(), []int{0, 1, 3})
	require.NoError(t, err)

	require.Equal(t, a.Hash(), b.Hash(), "Transposed move orders reach the same position")
	require.NotEqual(t, a.Hash(), c.Hash())
}
