package engine

import (
	"context"
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"
	"connect4/utils"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State  *game.GameState
	Agents map[game.Player]agent.Agent
}

// LocalEngine sets up a game where agents[0] plays red (first) and agents[1] plays yellow.
func LocalEngine(cfg game.Config, agents []agent.Agent) (*Engine, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("need exactly two agents, got %d", len(agents))
	}
	state, err := game.NewGameState(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		State: state,
		Agents: map[game.Player]agent.Agent{
			game.PlayerA: agents[0],
			game.PlayerB: agents[1],
		},
	}, nil
}

// Run asks the agent to move for the current player until the game ends.
func (e *Engine) Run(ctx context.Context) (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var result Result
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.State.Player())

	step := 1
	for !e.State.IsTerminal() {
		player := e.State.Player()
		move, searchMetric, err := e.Agents[player].FindMove(ctx, e.State)
		if err != nil {
			return result, gameMetric, moveMetrics, fmt.Errorf("step %d (%v): %w", step, player, err)
		}
		if utils.FindIndex(e.State.LegalMoves(), move) < 0 {
			return result, gameMetric, moveMetrics, fmt.Errorf("step %d (%v): agent chose column %d: %w", step, player, move, game.ErrIllegalMove)
		}
		if err := e.State.ApplyMove(move); err != nil {
			return result, gameMetric, moveMetrics, fmt.Errorf("step %d (%v): %w", step, player, err)
		}

		last, _ := e.State.LastMove()
		result.Moves = append(result.Moves, Update{Step: step, Move: last, Hash: e.State.Hash()})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %v played column %d", step, player, move)
		step++
	}

	if winner, ok := e.State.Winner(); ok {
		result.Winner = winner
		board := e.State.Board()
		result.Line = board.WinningLine()
		log.Info().Msgf("%v wins after %d moves", winner, len(result.Moves))
	} else {
		log.Info().Msgf("draw after %d moves", len(result.Moves))
	}

	gameMetric.Winner = result.Winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(result.Moves)
	return result, gameMetric, moveMetrics, nil
}
