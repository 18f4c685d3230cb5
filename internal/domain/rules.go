package domain

import "fmt"

// CheckMove validates a placement (from == nil) or relocation of piece onto to.
// It returns an ErrInvalidArgument wrap for malformed input and an
// *IllegalMoveError when a rule rejects the move.
func (b *Board) CheckMove(from *Square, to Square, piece Piece) error {
	if err := b.checkArgs(from, to, piece); err != nil {
		return err
	}
	illegal := &IllegalMoveError{Piece: piece, To: to}
	if from != nil {
		f := *from
		illegal.From = &f
	}

	if from == nil && b.players[piece.Color].Available(piece.Size) == 0 {
		return illegal
	}
	if top, ok := b.Top(to); ok && !piece.Covers(top) {
		return illegal
	}
	if from != nil {
		if *from == to {
			return illegal
		}
		top, ok := b.Top(*from)
		if !ok || !top.Equal(piece) {
			return illegal
		}
	}
	return nil
}

// CanPlacePiece reports whether CheckMove accepts the move.
// Malformed arguments are reported as false.
func (b *Board) CanPlacePiece(from *Square, to Square, piece Piece) bool {
	return b.CheckMove(from, to, piece) == nil
}

// PlacePiece applies the move after validating it. On error the board is unchanged.
func (b *Board) PlacePiece(from *Square, to Square, piece Piece) error {
	if err := b.CheckMove(from, to, piece); err != nil {
		return err
	}
	if from == nil {
		b.players[piece.Color].consume(piece.Size)
	} else {
		b.pop(*from)
	}
	b.push(to, piece)
	return nil
}

// Apply is PlacePiece for a Move value.
func (b *Board) Apply(m Move) error { return b.PlacePiece(m.Start, m.End, m.Piece) }

func (b *Board) checkArgs(from *Square, to Square, piece Piece) error {
	if err := b.checkSquare(to); err != nil {
		return err
	}
	if from != nil {
		if err := b.checkSquare(*from); err != nil {
			return err
		}
	}
	if !piece.Color.Valid() {
		return fmt.Errorf("%w: color %v", ErrInvalidArgument, piece.Color)
	}
	if !piece.Size.Valid() {
		return fmt.Errorf("%w: size %d", ErrInvalidArgument, piece.Size)
	}
	return nil
}
