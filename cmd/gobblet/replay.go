package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaminalder/codex-gobblet/internal/domain"
)

var (
	flagShowMoves   bool
	flagShowWinning bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <move>...",
	Short: "Apply moves to a fresh board and print the result",
	Long: `Apply moves to a fresh board, black first and alternating, then print
the board, both benches and the winner if there is one. A side left
without a legal move ends the game with no winner.

Examples:
  gobblet replay 1@0,0 1@1,0 2@0,1
  gobblet replay 3@1,1 --moves      # also list white's available moves
  gobblet replay 1@0,0 1@1,0 2@0,1 2@1,1 --winning`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(conf)
		logger.Debug("replaying", "moves", len(args))
		return replay(cmd.OutOrStdout(), args, flagShowMoves, flagShowWinning)
	},
}

func init() {
	replayCmd.Flags().BoolVar(&flagShowMoves, "moves", false, "List the available moves for the side to move")
	replayCmd.Flags().BoolVar(&flagShowWinning, "winning", false, "List moves that win immediately for the side to move")
}

// replay applies moves in order and writes the final position to w.
func replay(w io.Writer, moves []string, showMoves, showWinning bool) error {
	b := domain.NewBoard()
	turn := domain.Black
	for i, text := range moves {
		if winner, over := b.Outcome(turn); over {
			if winner == domain.NoColor {
				return fmt.Errorf("move %d (%s): no moves left for %s", i+1, text, turn)
			}
			return fmt.Errorf("move %d (%s): %s already won", i+1, text, winner)
		}
		m, err := b.ParseMove(turn, text)
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, text, err)
		}
		if m.Piece.Color != turn {
			return fmt.Errorf("move %d (%s): top piece belongs to %s", i+1, text, m.Piece.Color)
		}
		if err := b.Apply(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, text, err)
		}
		turn = turn.Opponent()
	}

	fmt.Fprint(w, renderBoard(b))
	if winner, over := b.Outcome(turn); over {
		if winner == domain.NoColor {
			fmt.Fprintf(w, "no moves left for %s\n", turn)
			return nil
		}
		fmt.Fprintf(w, "winner: %s\n", winner)
		return nil
	}
	fmt.Fprintf(w, "to move: %s\n", turn)
	if showMoves {
		fmt.Fprintf(w, "moves: %s\n", joinMoves(b.AvailableMoves(turn)))
	}
	if showWinning {
		fmt.Fprintf(w, "winning: %s\n", joinMoves(b.WinningMoves(turn)))
	}
	return nil
}

func joinMoves(moves []domain.Move) string {
	if len(moves) == 0 {
		return "-"
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
