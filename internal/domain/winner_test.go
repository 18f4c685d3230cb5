package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(t *testing.T, b *Board, c Color, s Size, x, y int) {
	t.Helper()
	require.NoError(t, b.PlacePiece(nil, Square{X: x, Y: y}, Piece{Size: s, Color: c}))
}

func TestFindWinner(t *testing.T) {
	t.Run("No winner on empty board", func(t *testing.T) {
		winner, ok := NewBoard().FindWinner()
		assert.False(t, ok)
		assert.Equal(t, NoColor, winner)
	})

	t.Run("Row of black tops", func(t *testing.T) {
		// Given: black tops on (0,0), (0,1), (0,2)
		b := NewBoard()
		place(t, b, Black, Small, 0, 0)
		place(t, b, Black, Medium, 0, 1)
		place(t, b, Black, Large, 0, 2)

		// When: checking for a winner
		winner, ok := b.FindWinner()

		// Then: black wins, and asking again gives the same answer
		require.True(t, ok)
		assert.Equal(t, Black, winner)
		again, ok := b.FindWinner()
		assert.True(t, ok)
		assert.Equal(t, winner, again)
	})

	t.Run("Every line is detected", func(t *testing.T) {
		for _, ln := range NewBoard().Lines() {
			b := NewBoard()
			for i, s := range ln {
				place(t, b, White, Sizes[i], s.X, s.Y)
			}
			winner, ok := b.FindWinner()
			require.True(t, ok, "line %v", ln)
			assert.Equal(t, White, winner)
		}
	})

	t.Run("Covered piece breaks the line", func(t *testing.T) {
		// Given: a black column whose middle is covered by white
		b := NewBoard()
		place(t, b, Black, Small, 0, 1)
		place(t, b, Black, Small, 1, 1)
		place(t, b, Black, Medium, 2, 1)
		place(t, b, White, Medium, 1, 1)

		// Then: nobody has a line
		_, ok := b.FindWinner()
		assert.False(t, ok)
	})

	t.Run("Line with an empty square", func(t *testing.T) {
		b := NewBoard()
		place(t, b, White, Small, 2, 0)
		place(t, b, White, Small, 2, 1)

		_, ok := b.FindWinner()
		assert.False(t, ok)
	})

	t.Run("First line in scan order wins", func(t *testing.T) {
		// Given: white owns row 2 and black owns row 0
		b := NewBoard()
		place(t, b, White, Small, 2, 1)
		place(t, b, White, Small, 2, 2)
		place(t, b, Black, Small, 0, 0)
		place(t, b, Black, Small, 1, 0)
		place(t, b, White, Medium, 2, 0)
		place(t, b, Black, Medium, 0, 1)
		place(t, b, Black, Medium, 0, 2)

		// Then: row 0 (black) precedes row 2 (white) in scan order
		winner, ok := b.FindWinner()
		require.True(t, ok)
		assert.Equal(t, Black, winner)
		assert.True(t, b.HasLine(White))
		assert.True(t, b.HasLine(Black))
	})
}

func TestOutcome(t *testing.T) {
	t.Run("Fresh board is not over", func(t *testing.T) {
		winner, over := NewBoard().Outcome(Black)
		assert.False(t, over)
		assert.Equal(t, NoColor, winner)
	})

	t.Run("Completed line wins", func(t *testing.T) {
		b := NewBoard()
		place(t, b, White, Small, 2, 0)
		place(t, b, White, Medium, 2, 1)
		place(t, b, White, Large, 2, 2)

		winner, over := b.Outcome(Black)

		assert.True(t, over)
		assert.Equal(t, White, winner)
	})

	t.Run("No available move ends without a winner", func(t *testing.T) {
		// Given: every square topped by a large in a drawn pattern
		b := NewBoard()
		pattern := [3][3]Color{
			{Black, White, Black},
			{Black, White, White},
			{White, Black, Black},
		}
		for x, row := range pattern {
			for y, c := range row {
				b.state[x][y] = []Piece{{Size: Large, Color: c}}
			}
		}

		// When: either side is to move
		for _, c := range Colors {
			winner, over := b.Outcome(c)

			// Then: nothing can be played and nobody won
			assert.Empty(t, b.AvailableMoves(c), "%v", c)
			assert.True(t, over, "%v", c)
			assert.Equal(t, NoColor, winner, "%v", c)
		}
	})
}

func TestCountOnLine(t *testing.T) {
	b := NewBoard()
	place(t, b, Black, Small, 0, 0)
	place(t, b, White, Medium, 1, 1)
	diagonal := b.Lines()[6]

	assert.Equal(t, 1, b.CountOnLine(Black, diagonal))
	assert.Equal(t, 1, b.CountOnLine(White, diagonal))

	place(t, b, White, Large, 0, 0)
	assert.Equal(t, 0, b.CountOnLine(Black, diagonal))
	assert.Equal(t, 2, b.CountOnLine(White, diagonal))
}

func TestWinningMoves(t *testing.T) {
	// Given: black holds (0,0) and (0,1)
	b := NewBoard()
	place(t, b, Black, Small, 0, 0)
	place(t, b, Black, Medium, 0, 1)

	// When: asking for winning moves
	moves := b.WinningMoves(Black)

	// Then: each of them completes a black line, and the board is untouched
	require.NotEmpty(t, moves)
	assert.True(t, b.HasWinningMove(Black))
	for _, m := range moves {
		next := b.Clone()
		require.NoError(t, next.Apply(m))
		assert.True(t, next.HasLine(Black), "%v", m)
	}
	var names []string
	for _, m := range moves {
		names = append(names, m.String())
	}
	assert.Contains(t, names, "1@0,2")
	assert.Contains(t, names, "3@0,2")
	assert.Len(t, b.Stack(Square{X: 0, Y: 2}), 0)
	assert.False(t, b.HasWinningMove(White))
}
