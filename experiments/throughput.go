package experiments

import (
	"context"
	"time"

	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

// Throughput is the measured search speed for one iteration budget.
type Throughput struct {
	Iterations          int
	Duration            time.Duration
	IterationsPerSecond float64
	RolloutMoves        int
	TreeSize            int
}

// RunThroughputExperiment times one search per budget from the empty board.
func RunThroughputExperiment(ctx context.Context, budgets []int, seed uint64) ([]Throughput, error) {
	log.Info().Msg("starting throughput experiment...")

	results := make([]Throughput, 0, len(budgets))
	for _, budget := range budgets {
		m := searcher.NewMCTS(searcher.WithIterations(budget), searcher.WithSeed(seed), searcher.WithMetrics())
		_, metric, err := m.Simulate(ctx, game.NewStandardGameState())
		if err != nil {
			return results, err
		}

		t := Throughput{
			Iterations:   metric.Iterations,
			Duration:     metric.Duration,
			RolloutMoves: metric.RolloutMoves,
			TreeSize:     metric.TreeSize,
		}
		if seconds := metric.Duration.Seconds(); seconds > 0 {
			t.IterationsPerSecond = float64(metric.Iterations) / seconds
		}
		results = append(results, t)
		log.Info().Msgf("budget %d: %d iterations in %v (%.0f/s, %d nodes)",
			budget, t.Iterations, t.Duration, t.IterationsPerSecond, t.TreeSize)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
