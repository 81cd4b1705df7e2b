package game

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid. It is a value type: assigning a Board copies it.
type Board [Size][Size]Cell

// NewBoard returns the standard opening position.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

func (b *Board) At(p Point) Cell {
	return b[p.Row][p.Col]
}

func (b *Board) Set(p Point, c Cell) {
	b[p.Row][p.Col] = c
}

// Count tallies the board, indexed by Cell.
func (b *Board) Count() [3]int {
	var count [3]int
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			count[b[i][j]]++
		}
	}
	return count
}

// Validate checks that every cell holds a known value and that player is a
// side that can move.
func Validate(b *Board, player Cell) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, uint8(player))
	}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] > White {
				return fmt.Errorf("%w: %d at %v", ErrInvalidCell, uint8(b[i][j]), Point{i, j})
			}
		}
	}
	return nil
}

// String renders the board with O for black and X for white.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("+---------------+\n")
	for i := 0; i < Size; i++ {
		sb.WriteByte('|')
		for j := 0; j < Size; j++ {
			if j != 0 {
				sb.WriteByte(' ')
			}
			switch b[i][j] {
			case Black:
				sb.WriteByte('O')
			case White:
				sb.WriteByte('X')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---------------+\n")
	return sb.String()
}
