package game

// Move is either a disc placement or a pass.
type Move struct {
	Point
	Pass bool
}

// PassMove is the move of a side without any legal placement.
var PassMove = Move{Pass: true}

func Place(p Point) Move {
	return Move{Point: p}
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Point.String()
}
