package domain

import "fmt"

const (
	// BoardSize is the grid dimension.
	BoardSize = 3
	// PiecesPerSize is the initial bench stock of each size for each player.
	PiecesPerSize = 2
)

// Player owns a color and its bench of unplaced pieces.
type Player struct {
	color     Color
	available map[Size]int
}

func newPlayer(c Color) *Player {
	p := &Player{color: c, available: make(map[Size]int, len(Sizes))}
	for _, s := range Sizes {
		p.available[s] = PiecesPerSize
	}
	return p
}

// Color returns the player's color.
func (p *Player) Color() Color { return p.color }

// Available returns how many pieces of size s remain on the bench.
func (p *Player) Available(s Size) int { return p.available[s] }

func (p *Player) consume(s Size) {
	if p.available[s] > 0 {
		p.available[s]--
	}
}

// Line is a row, column or diagonal of squares.
type Line []Square

// Board is the full game state: a grid of stacks, the line table and both benches.
// Each stack is ordered with index 0 as the exposed top piece.
type Board struct {
	size    int
	state   [][][]Piece
	lines   []Line
	players map[Color]*Player
}

// NewBoard returns an empty board with full benches for black and white.
func NewBoard() *Board {
	b := &Board{
		size:    BoardSize,
		players: make(map[Color]*Player, len(Colors)),
	}
	b.state = make([][][]Piece, b.size)
	for x := range b.state {
		b.state[x] = make([][]Piece, b.size)
	}
	for _, c := range Colors {
		b.players[c] = newPlayer(c)
	}
	b.lines = buildLines(b.size)
	return b
}

// buildLines returns rows, then columns, then the two diagonals.
func buildLines(n int) []Line {
	lines := make([]Line, 0, 2*n+2)
	for i := 0; i < n; i++ {
		row := make(Line, n)
		for j := 0; j < n; j++ {
			row[j] = Square{X: i, Y: j}
		}
		lines = append(lines, row)
	}
	for i := 0; i < n; i++ {
		col := make(Line, n)
		for j := 0; j < n; j++ {
			col[j] = Square{X: j, Y: i}
		}
		lines = append(lines, col)
	}
	major, minor := make(Line, n), make(Line, n)
	for i := 0; i < n; i++ {
		major[i] = Square{X: i, Y: i}
		minor[i] = Square{X: n - 1 - i, Y: i}
	}
	return append(lines, major, minor)
}

// Size returns the grid dimension.
func (b *Board) Size() int { return b.size }

// Lines returns the line table in scan order: rows, columns, diagonals.
func (b *Board) Lines() []Line {
	out := make([]Line, len(b.lines))
	for i, ln := range b.lines {
		out[i] = append(Line(nil), ln...)
	}
	return out
}

// Player returns the player for c.
func (b *Board) Player(c Color) (*Player, error) {
	p, ok := b.players[c]
	if !ok {
		return nil, fmt.Errorf("%w: color %v", ErrInvalidArgument, c)
	}
	return p, nil
}

// Bench returns a snapshot of the remaining pieces of c by size.
func (b *Board) Bench(c Color) map[Size]int {
	out := make(map[Size]int, len(Sizes))
	p, ok := b.players[c]
	if !ok {
		return out
	}
	for _, s := range Sizes {
		out[s] = p.available[s]
	}
	return out
}

// InBounds reports whether sq addresses a cell of the grid.
func (b *Board) InBounds(sq Square) bool {
	return sq.X >= 0 && sq.X < b.size && sq.Y >= 0 && sq.Y < b.size
}

func (b *Board) checkSquare(sq Square) error {
	if !b.InBounds(sq) {
		return fmt.Errorf("%w: square %v out of bounds", ErrInvalidArgument, sq)
	}
	return nil
}

// Top returns the exposed piece at sq, or false when the stack is empty or sq is off the board.
func (b *Board) Top(sq Square) (Piece, bool) {
	if !b.InBounds(sq) {
		return Piece{}, false
	}
	st := b.state[sq.X][sq.Y]
	if len(st) == 0 {
		return Piece{}, false
	}
	return st[0], true
}

// TopSize returns the size of the exposed piece at sq, 0 when empty.
func (b *Board) TopSize(sq Square) Size {
	p, ok := b.Top(sq)
	if !ok {
		return 0
	}
	return p.Size
}

// Stack returns a copy of the stack at sq, top first.
func (b *Board) Stack(sq Square) []Piece {
	if !b.InBounds(sq) {
		return nil
	}
	return append([]Piece(nil), b.state[sq.X][sq.Y]...)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cp := &Board{
		size:    b.size,
		lines:   b.lines,
		players: make(map[Color]*Player, len(b.players)),
	}
	cp.state = make([][][]Piece, b.size)
	for x := range b.state {
		cp.state[x] = make([][]Piece, b.size)
		for y := range b.state[x] {
			if len(b.state[x][y]) > 0 {
				cp.state[x][y] = append([]Piece(nil), b.state[x][y]...)
			}
		}
	}
	for c, p := range b.players {
		np := &Player{color: c, available: make(map[Size]int, len(p.available))}
		for s, n := range p.available {
			np.available[s] = n
		}
		cp.players[c] = np
	}
	return cp
}

func (b *Board) push(sq Square, p Piece) {
	st := b.state[sq.X][sq.Y]
	st = append(st, Piece{})
	copy(st[1:], st)
	st[0] = p
	b.state[sq.X][sq.Y] = st
}

func (b *Board) pop(sq Square) Piece {
	st := b.state[sq.X][sq.Y]
	p := st[0]
	b.state[sq.X][sq.Y] = append(st[:0:0], st[1:]...)
	return p
}
