package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// AvailableMoves enumerates the legal moves for c. Squares are visited in
// row-major order; for each square bench placements come first by ascending
// size, then relocations of its top piece to every other square in row-major
// order. Only tops of color c are relocated.
func (b *Board) AvailableMoves(c Color) []Move {
	p, ok := b.players[c]
	if !ok {
		return nil
	}
	var out []Move
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			sq := Square{X: x, Y: y}
			topSize := b.TopSize(sq)
			for _, s := range Sizes {
				if p.Available(s) > 0 && s > topSize {
					out = append(out, Move{Piece: Piece{Size: s, Color: c}, End: sq})
				}
			}
			top, ok := b.Top(sq)
			if !ok || top.Color != c {
				continue
			}
			for tx := 0; tx < b.size; tx++ {
				for ty := 0; ty < b.size; ty++ {
					dst := Square{X: tx, Y: ty}
					if dst == sq || b.TopSize(dst) >= top.Size {
						continue
					}
					from := sq
					out = append(out, Move{Piece: top, Start: &from, End: dst})
				}
			}
		}
	}
	return out
}

// ParseMove reads a move for color c written as "<size>@x,y" (from the bench)
// or "x,y>x,y" (relocating the top piece). Squares must be on the board; the
// move itself is not validated.
func (b *Board) ParseMove(c Color, text string) (Move, error) {
	if !c.Valid() {
		return Move{}, fmt.Errorf("%w: color %v", ErrInvalidArgument, c)
	}
	text = strings.TrimSpace(text)
	if sizeStr, dst, ok := strings.Cut(text, "@"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(sizeStr))
		if err != nil || n < int(Small) || n > int(Large) {
			return Move{}, fmt.Errorf("%w: size in %q", ErrInvalidArgument, text)
		}
		to, err := parseSquare(dst)
		if err != nil {
			return Move{}, err
		}
		if err := b.checkSquare(to); err != nil {
			return Move{}, err
		}
		return Move{Piece: Piece{Size: Size(n), Color: c}, End: to}, nil
	}
	src, dst, ok := strings.Cut(text, ">")
	if !ok {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidArgument, text)
	}
	from, err := parseSquare(src)
	if err != nil {
		return Move{}, err
	}
	to, err := parseSquare(dst)
	if err != nil {
		return Move{}, err
	}
	if err := b.checkSquare(from); err != nil {
		return Move{}, err
	}
	if err := b.checkSquare(to); err != nil {
		return Move{}, err
	}
	top, ok := b.Top(from)
	if !ok {
		return Move{}, &IllegalMoveError{Piece: Piece{Color: c}, From: &from, To: to}
	}
	return Move{Piece: top, Start: &from, End: to}, nil
}

func parseSquare(s string) (Square, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Square{}, fmt.Errorf("%w: square %q", ErrInvalidArgument, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Square{}, fmt.Errorf("%w: square %q", ErrInvalidArgument, s)
	}
	return Square{X: x, Y: y}, nil
}
