package domain

import (
	"errors"
	"fmt"
)

// Errors returned by domain operations.
var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidArgument = errors.New("invalid argument")
)

// IllegalMoveError describes a rejected placement or relocation.
type IllegalMoveError struct {
	Piece Piece
	From  *Square
	To    Square
}

func (e *IllegalMoveError) Error() string {
	from := "bench"
	if e.From != nil {
		from = e.From.String()
	}
	return fmt.Sprintf("can't place piece %s from %s to %s", e.Piece, from, e.To)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }
