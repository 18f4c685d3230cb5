package domain

// FindWinner scans rows, then columns, then diagonals and returns the color of
// the first line whose squares are all occupied by tops of one color.
func (b *Board) FindWinner() (Color, bool) {
	for _, ln := range b.lines {
		if c, ok := b.lineOwner(ln); ok {
			return c, true
		}
	}
	return NoColor, false
}

// Outcome reports whether the game is over with toMove to play. A completed
// line ends it with that line's owner as winner; toMove having no available
// move ends it with NoColor.
func (b *Board) Outcome(toMove Color) (Color, bool) {
	if winner, ok := b.FindWinner(); ok {
		return winner, true
	}
	if len(b.AvailableMoves(toMove)) == 0 {
		return NoColor, true
	}
	return NoColor, false
}

// HasLine reports whether c owns any complete line, regardless of scan order.
func (b *Board) HasLine(c Color) bool {
	for _, ln := range b.lines {
		if owner, ok := b.lineOwner(ln); ok && owner == c {
			return true
		}
	}
	return false
}

func (b *Board) lineOwner(ln Line) (Color, bool) {
	var owner Color
	for i, sq := range ln {
		top, ok := b.Top(sq)
		if !ok {
			return NoColor, false
		}
		if i == 0 {
			owner = top.Color
		} else if top.Color != owner {
			return NoColor, false
		}
	}
	return owner, len(ln) > 0
}

// CountOnLine returns how many squares of ln show a top piece of color c.
func (b *Board) CountOnLine(c Color, ln Line) int {
	n := 0
	for _, sq := range ln {
		if top, ok := b.Top(sq); ok && top.Color == c {
			n++
		}
	}
	return n
}

// WinningMoves returns the available moves after which c owns a line.
func (b *Board) WinningMoves(c Color) []Move {
	var out []Move
	for _, m := range b.AvailableMoves(c) {
		next := b.Clone()
		if err := next.Apply(m); err != nil {
			continue
		}
		if next.HasLine(c) {
			out = append(out, m)
		}
	}
	return out
}

// HasWinningMove reports whether c can complete a line in one move.
func (b *Board) HasWinningMove(c Color) bool { return len(b.WinningMoves(c)) > 0 }
