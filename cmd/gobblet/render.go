package main

import (
	"fmt"
	"strings"

	"github.com/jaminalder/codex-gobblet/internal/domain"
)

// renderBoard draws one row per line. A cell shows the top piece as color
// initial and size, plus the stack depth when something is covered.
func renderBoard(b *domain.Board) string {
	var sb strings.Builder
	for x := 0; x < b.Size(); x++ {
		cells := make([]string, b.Size())
		for y := range cells {
			sq := domain.Square{X: x, Y: y}
			top, ok := b.Top(sq)
			if !ok {
				cells[y] = "  .  "
				continue
			}
			cell := fmt.Sprintf(" %c%d", colorInitial(top.Color), top.Size)
			if depth := len(b.Stack(sq)); depth > 1 {
				cell += fmt.Sprintf("/%d", depth)
			} else {
				cell += "  "
			}
			cells[y] = cell
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}
	for _, c := range domain.Colors {
		bench := b.Bench(c)
		fmt.Fprintf(&sb, "%s bench: 1×%d 2×%d 3×%d\n", c, bench[domain.Small], bench[domain.Medium], bench[domain.Large])
	}
	return sb.String()
}

func colorInitial(c domain.Color) byte {
	if c == domain.White {
		return 'W'
	}
	return 'B'
}
