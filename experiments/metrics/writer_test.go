package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "scoring")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "scoring"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "mcts", Iterations: 500, Exploration: 1.41, Scoring: "root"},
			{ID: 2, Kind: "random"},
		}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "mcts", "500", "0s", "1.41", "root"}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: 7, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{StartingPlayer: "red", Winner: "yellow", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 20},
		}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"7", "1", "2", "red", "yellow", "20", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game:       7,
			MoveMetric: MoveMetric{Step: 1, Player: "red", Move: 3, SearchMetric: SearchMetric{Iterations: 500, RolloutMoves: 9000, TreeSize: 501, MaxDepth: 6}},
		}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"7", "1", "red", "3", "0s", "500", "9000", "501", "6"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(100, 1.41, "mover")
	c.AddIteration(2)
	c.AddIteration(5)
	c.AddIteration(3)
	c.AddRolloutMoves(12)
	c.SetTreeSize(4)

	metric := c.Complete()
	require.Equal(t, 100, metric.Budget)
	require.Equal(t, 3, metric.Iterations)
	require.Equal(t, 5, metric.MaxDepth)
	require.Equal(t, 12, metric.RolloutMoves)
	require.Equal(t, 4, metric.TreeSize)
	require.Equal(t, "mover", metric.Scoring)

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
