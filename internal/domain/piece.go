package domain

import "fmt"

// Color identifies one of the two players.
type Color uint8

const (
	NoColor Color = iota
	Black
	White
)

// Colors lists the playing colors, black first.
var Colors = [2]Color{Black, White}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Valid reports whether c is Black or White.
func (c Color) Valid() bool { return c == Black || c == White }

// Opponent returns the other color.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoColor
	}
}

// ParseColor accepts "black" or "white".
func ParseColor(s string) (Color, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return NoColor, fmt.Errorf("%w: color %q", ErrInvalidArgument, s)
}

// Size is a piece rank. A larger size covers a smaller one.
type Size uint8

const (
	Small  Size = 1
	Medium Size = 2
	Large  Size = 3
)

// Sizes lists every size in ascending order.
var Sizes = [3]Size{Small, Medium, Large}

// Valid reports whether s is one of Small, Medium or Large.
func (s Size) Valid() bool { return s >= Small && s <= Large }

// Piece is an immutable (size, color) value.
type Piece struct {
	Size  Size
	Color Color
}

// Equal compares size and color.
func (p Piece) Equal(o Piece) bool { return p.Size == o.Size && p.Color == o.Color }

// Covers reports whether p may be placed on top of o. Only size is compared.
func (p Piece) Covers(o Piece) bool { return p.Size > o.Size }

func (p Piece) String() string { return fmt.Sprintf("Piece(%d, %s)", p.Size, p.Color) }

// Square addresses a cell as (x, y).
type Square struct {
	X, Y int
}

func (s Square) String() string { return fmt.Sprintf("(%d, %d)", s.X, s.Y) }

// Move carries a piece from Start (nil means the bench) to End.
type Move struct {
	Piece Piece
	Start *Square
	End   Square
}

// FromBench reports whether the move places a new piece.
func (m Move) FromBench() bool { return m.Start == nil }

// String renders the move in notation: "2@0,1" or "0,0>1,1".
func (m Move) String() string {
	if m.Start == nil {
		return fmt.Sprintf("%d@%d,%d", m.Piece.Size, m.End.X, m.End.Y)
	}
	return fmt.Sprintf("%d,%d>%d,%d", m.Start.X, m.Start.Y, m.End.X, m.End.Y)
}
