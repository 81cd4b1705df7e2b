package agent

import (
	"math"

	"othello/game"
	"othello/metrics"
	"othello/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board game.Board, player game.Cell) (game.Point, metrics.SearchMetric, error) {
	policy, metric, err := a.mcts.Simulate(board, player)
	if err != nil {
		return game.Point{}, metric, err
	}
	return findMax(policy), metric, nil
}

// findMax picks the candidate with the highest win rate. Ties keep the
// earlier candidate.
func findMax(policy searcher.Policy) game.Point {
	var maxMove game.Point
	maxValue := -math.MaxFloat64
	for _, candidate := range policy {
		if value := candidate.Value(); value > maxValue {
			maxValue = value
			maxMove = candidate.Move
		}
	}
	return maxMove
}
