package game

// LegalMoves lists the cells where player can move, in row-major order.
func (b *Board) LegalMoves(player Cell) []Point {
	var moves []Point
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			p := Point{i, j}
			if b.isLegal(player, p) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// IsLegal reports whether player may place a disc at p.
func (b *Board) IsLegal(player Cell, p Point) bool {
	return p.inBounds() && player.IsPlayer() && b.isLegal(player, p)
}

func (b *Board) isLegal(player Cell, p Point) bool {
	if b.At(p) != Empty {
		return false
	}
	for _, dir := range directions {
		if b.brackets(player, p, dir) {
			return true
		}
	}
	return false
}

// brackets reports whether the run of opponent discs starting next to p in
// direction dir is non-empty and closed by a player disc.
func (b *Board) brackets(player Cell, p Point, dir Point) bool {
	opponent := player.Opponent()
	q := p.add(dir)
	if !q.inBounds() || b.At(q) != opponent {
		return false
	}
	for q = q.add(dir); q.inBounds(); q = q.add(dir) {
		switch b.At(q) {
		case player:
			return true
		case Empty:
			return false
		}
	}
	return false
}

// Apply places a player disc at p and flips every bracketed opponent run.
// It returns the number of flipped discs. The move is assumed legal.
func (b *Board) Apply(player Cell, p Point) int {
	flipped := 0
	for _, dir := range directions {
		if !b.brackets(player, p, dir) {
			continue
		}
		for q := p.add(dir); b.At(q) != player; q = q.add(dir) {
			b.Set(q, player)
			flipped++
		}
	}
	b.Set(p, player)
	return flipped
}

// Play is the pure form of Apply.
func (b Board) Play(player Cell, p Point) Board {
	b.Apply(player, p)
	return b
}

// IsTerminal reports whether the game is over. The position is still open
// when some empty cell sees, in some direction, an adjacent run of discs that
// changes colour before an empty cell or the edge. The first colour change of
// such a run brackets the discs before it, so this holds exactly when one of
// the two sides has a legal move.
func (b *Board) IsTerminal() bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] != Empty {
				continue
			}
			for _, dir := range directions {
				p := Point{i, j}.add(dir)
				if !p.inBounds() {
					continue
				}
				first := b.At(p)
				for ; p.inBounds() && b.At(p) != Empty; p = p.add(dir) {
					if b.At(p) != first {
						return false
					}
				}
			}
		}
	}
	return true
}
