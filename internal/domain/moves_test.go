package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveKey(m Move) string { return fmt.Sprintf("%v|%s", m.Piece, m) }

func TestAvailableMovesFreshBoard(t *testing.T) {
	// Given: a fresh board
	b := NewBoard()

	// When: black asks for moves
	moves := b.AvailableMoves(Black)

	// Then: every square offers every size from the bench and nothing else
	require.Len(t, moves, BoardSize*BoardSize*len(Sizes))
	for _, m := range moves {
		assert.True(t, m.FromBench())
		assert.Equal(t, Black, m.Piece.Color)
	}

	// Then: order is row-major, ascending size
	assert.Equal(t, "1@0,0", moves[0].String())
	assert.Equal(t, "3@0,0", moves[2].String())
	assert.Equal(t, "1@0,1", moves[3].String())
	assert.Equal(t, "3@2,2", moves[len(moves)-1].String())
}

func TestAvailableMovesDeterministic(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlacePiece(nil, Square{X: 1, Y: 1}, Piece{Size: Medium, Color: White}))
	require.NoError(t, b.PlacePiece(nil, Square{X: 0, Y: 2}, Piece{Size: Large, Color: Black}))

	assert.Equal(t, b.AvailableMoves(Black), b.AvailableMoves(Black))
}

func TestAvailableMovesRelocations(t *testing.T) {
	// Given: black large at (0,0), white medium at (1,1), black bench empty of larges
	b := NewBoard()
	require.NoError(t, b.PlacePiece(nil, Square{X: 0, Y: 0}, Piece{Size: Large, Color: Black}))
	require.NoError(t, b.PlacePiece(nil, Square{X: 1, Y: 1}, Piece{Size: Medium, Color: White}))
	require.NoError(t, b.PlacePiece(nil, Square{X: 2, Y: 2}, Piece{Size: Large, Color: Black}))

	// When: black asks for moves
	moves := b.AvailableMoves(Black)

	// Then: the (0,0) large can go anywhere except itself and the other large
	var fromOrigin []string
	for _, m := range moves {
		if m.Start != nil && *m.Start == (Square{X: 0, Y: 0}) {
			fromOrigin = append(fromOrigin, m.String())
		}
	}
	assert.Equal(t, []string{"0,0>0,1", "0,0>0,2", "0,0>1,0", "0,0>1,1", "0,0>1,2", "0,0>2,0", "0,0>2,1"}, fromOrigin)

	// Then: white's medium is never relocated by black
	for _, m := range moves {
		if m.Start != nil {
			assert.Equal(t, Black, m.Piece.Color)
		}
		if m.FromBench() {
			assert.NotEqual(t, Large, m.Piece.Size, "no large pieces remain on the bench")
		}
	}

	// Then: the covered center only accepts a large, which black no longer holds
	for _, m := range moves {
		if m.End == (Square{X: 1, Y: 1}) {
			assert.Equal(t, Large, m.Piece.Size)
			assert.False(t, m.FromBench())
		}
	}
}

func TestAvailableMovesSoundAndComplete(t *testing.T) {
	positions := map[string][]Move{
		"fresh": nil,
		"mixed": {
			{Piece: Piece{Size: Small, Color: Black}, End: Square{X: 0, Y: 0}},
			{Piece: Piece{Size: Medium, Color: White}, End: Square{X: 0, Y: 0}},
			{Piece: Piece{Size: Large, Color: Black}, End: Square{X: 1, Y: 1}},
			{Piece: Piece{Size: Small, Color: White}, End: Square{X: 2, Y: 1}},
			{Piece: Piece{Size: Medium, Color: Black}, End: Square{X: 2, Y: 1}},
			{Piece: Piece{Size: Large, Color: White}, End: Square{X: 2, Y: 1}},
		},
	}
	for name, setup := range positions {
		t.Run(name, func(t *testing.T) {
			b := NewBoard()
			for _, m := range setup {
				require.NoError(t, b.Apply(m))
			}
			for _, c := range Colors {
				generated := map[string]bool{}
				for _, m := range b.AvailableMoves(c) {
					// soundness
					require.True(t, b.CanPlacePiece(m.Start, m.End, m.Piece), "%v", m)
					generated[moveKey(m)] = true
				}

				// completeness over every triple for color c
				sources := []*Square{nil}
				for x := 0; x < BoardSize; x++ {
					for y := 0; y < BoardSize; y++ {
						sources = append(sources, sq(x, y))
					}
				}
				legal := 0
				for _, from := range sources {
					for x := 0; x < BoardSize; x++ {
						for y := 0; y < BoardSize; y++ {
							for _, s := range Sizes {
								m := Move{Piece: Piece{Size: s, Color: c}, Start: from, End: Square{X: x, Y: y}}
								if b.CanPlacePiece(m.Start, m.End, m.Piece) {
									legal++
									assert.True(t, generated[moveKey(m)], "missing %v for %v", m, c)
								}
							}
						}
					}
				}
				assert.Equal(t, legal, len(generated))
			}
		})
	}
}

func TestAvailableMovesUnknownColor(t *testing.T) {
	assert.Empty(t, NewBoard().AvailableMoves(NoColor))
}

func TestParseMove(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlacePiece(nil, Square{X: 1, Y: 2}, Piece{Size: Medium, Color: White}))

	t.Run("Bench placement", func(t *testing.T) {
		m, err := b.ParseMove(Black, " 3@0,1 ")
		require.NoError(t, err)
		assert.Equal(t, Move{Piece: Piece{Size: Large, Color: Black}, End: Square{X: 0, Y: 1}}, m)
		assert.Equal(t, "3@0,1", m.String())
	})

	t.Run("Relocation takes the top piece", func(t *testing.T) {
		m, err := b.ParseMove(White, "1,2>0,0")
		require.NoError(t, err)
		assert.Equal(t, Piece{Size: Medium, Color: White}, m.Piece)
		assert.Equal(t, sq(1, 2), m.Start)
		assert.Equal(t, Square{X: 0, Y: 0}, m.End)
		assert.Equal(t, "1,2>0,0", m.String())
	})

	t.Run("Relocation from empty square", func(t *testing.T) {
		_, err := b.ParseMove(White, "0,0>1,1")
		assert.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("Squares off the board", func(t *testing.T) {
		for _, text := range []string{"0,9>1,1", "1,2>3,0", "-1,0>0,0", "1@0,3"} {
			_, err := b.ParseMove(White, text)
			assert.ErrorIs(t, err, ErrInvalidArgument, "%q", text)
			assert.NotErrorIs(t, err, ErrIllegalMove, "%q", text)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, text := range []string{"", "4@0,0", "0@1,1", "x@1,1", "1@11", "1,1-2,2", "a,b>1,1", "1,1>2"} {
			_, err := b.ParseMove(Black, text)
			assert.ErrorIs(t, err, ErrInvalidArgument, "%q", text)
		}
	})

	t.Run("Unknown color", func(t *testing.T) {
		_, err := b.ParseMove(NoColor, "1@0,0")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("white")
	require.NoError(t, err)
	assert.Equal(t, White, c)
	assert.Equal(t, Black, c.Opponent())
	assert.Equal(t, "white", c.String())

	_, err = ParseColor("red")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPieceComparison(t *testing.T) {
	small := Piece{Size: Small, Color: Black}
	otherSmall := Piece{Size: Small, Color: White}
	large := Piece{Size: Large, Color: White}

	assert.False(t, small.Equal(otherSmall), "same size is not equal")
	assert.True(t, small.Equal(Piece{Size: Small, Color: Black}))
	assert.True(t, large.Covers(small))
	assert.False(t, small.Covers(otherSmall))
	assert.False(t, small.Covers(large))
}
