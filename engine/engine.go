package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"othello/metrics"
	"othello/searcher/agent"
)

// Engine makes one decision: it reads a state, asks the agent for a move and
// writes the action. Search records go to Writer when it is set.
type Engine struct {
	Agent  agent.Agent
	Writer *metrics.Writer
}

func NewEngine(a agent.Agent, writer *metrics.Writer) *Engine {
	if a == nil {
		panic("engine needs an agent")
	}
	return &Engine{Agent: a, Writer: writer}
}

// Run executes one decision from the state in in to the action in out.
func (e *Engine) Run(in io.Reader, out io.Writer) error {
	player, board, err := ReadState(in)
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	id := uuid.NewString()
	start := time.Now()
	log.Debug().Str("search_id", id).Msgf("player %v to move\n%v", player, board)

	move, metric, err := e.Agent.FindMove(board, player)
	if err != nil {
		return fmt.Errorf("failed to find move: %w", err)
	}
	if err := WriteMove(out, move); err != nil {
		return err
	}

	log.Info().
		Str("search_id", id).
		Stringer("player", player).
		Stringer("move", move).
		Int("episodes", metric.Episodes).
		Dur("elapsed", time.Since(start)).
		Msg("move chosen")

	if e.Writer != nil {
		record := metrics.SearchRecord{
			ID:           id,
			Time:         start,
			Player:       player,
			Move:         move,
			SearchMetric: metric,
		}
		if err := e.Writer.WriteSearchRecords([]metrics.SearchRecord{record}); err != nil {
			// The move is already written
			log.Warn().Err(err).Str("search_id", id).Msg("failed to write search record")
		}
	}
	return nil
}
