package agent

import (
	"othello/game"
	"othello/metrics"
)

type Agent interface {
	// FindMove returns the chosen move and performance metrics (if collected) from the simulation process
	FindMove(board game.Board, player game.Cell) (game.Point, metrics.SearchMetric, error)
}
