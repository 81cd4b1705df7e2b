package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"othello/game"
)

var ErrMalformedState = errors.New("malformed state")

// ReadState parses a state file: the player to move followed by the 64
// cells in row-major order, all whitespace separated.
func ReadState(r io.Reader) (game.Cell, game.Board, error) {
	var board game.Board

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformedState, what)
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not an integer: %q", ErrMalformedState, what, scanner.Text())
		}
		return v, nil
	}

	v, err := next("player")
	if err != nil {
		return game.Empty, board, err
	}
	player, err := game.ParsePlayer(v)
	if err != nil {
		return game.Empty, board, err
	}

	for i := 0; i < game.Cells; i++ {
		p := game.Point{Row: i / game.Size, Col: i % game.Size}
		v, err := next("cell " + p.String())
		if err != nil {
			return game.Empty, board, err
		}
		c, err := game.ParseCell(v)
		if err != nil {
			return game.Empty, board, fmt.Errorf("cell %v: %w", p, err)
		}
		board.Set(p, c)
	}
	return player, board, nil
}

// WriteMove writes the action file line "row col".
func WriteMove(w io.Writer, p game.Point) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", p.Row, p.Col); err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}
	return nil
}
