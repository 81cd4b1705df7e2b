package game

import (
	"errors"
	"fmt"
)

// Size is the width and height of an Othello board.
const Size = 8

// Cells is the number of cells on a board.
const Cells = Size * Size

// Cell is the content of one board square. The numeric values match the
// state file format.
type Cell uint8

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = 2
)

var (
	ErrInvalidCell   = errors.New("invalid cell value")
	ErrInvalidPlayer = errors.New("invalid player to move")
	ErrNoMoves       = errors.New("no legal move for player to move")
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) IsPlayer() bool {
	return c == Black || c == White
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// ParseCell converts a state file value into a Cell.
func ParseCell(v int) (Cell, error) {
	if v < int(Empty) || v > int(White) {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidCell, v)
	}
	return Cell(v), nil
}

// ParsePlayer converts a state file value into the side to move.
func ParsePlayer(v int) (Cell, error) {
	if v != int(Black) && v != int(White) {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidPlayer, v)
	}
	return Cell(v), nil
}

// Point is a 0-based (row, col) board coordinate.
type Point struct {
	Row int
	Col int
}

func (p Point) add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Point) inBounds() bool {
	return 0 <= p.Row && p.Row < Size && 0 <= p.Col && p.Col < Size
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

var directions = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
