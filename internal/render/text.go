package render

import (
	"fmt"
	"strings"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
)

// FormatText renders the grid's current cell contents as a plain-text
// square: a block is '#', a filled letter is itself, and an unfilled
// open cell is '.'. This is the quickest way to eyeball a grid or a
// partial solve from a terminal, with no clue text attached.
func FormatText(g *gridmodel.GridModel) string {
	var b strings.Builder
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			cell := g.Cell(r, c)
			switch {
			case cell.Kind == gridmodel.Block:
				b.WriteByte('#')
			case cell.Letter != 0:
				b.WriteRune(cell.Letter)
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatClueList renders the Across/Down clue lists as numbered plain
// text, suitable for appending after FormatText's grid.
func FormatClueList(g *gridmodel.GridModel, clues Clues) string {
	var b strings.Builder
	b.WriteString("Across:\n")
	for _, slot := range g.Slots() {
		if slot.Direction != gridmodel.Across {
			continue
		}
		fmt.Fprintf(&b, "  %d. %s\n", slot.Number, clues[slot.ID])
	}
	b.WriteString("Down:\n")
	for _, slot := range g.Slots() {
		if slot.Direction != gridmodel.Down {
			continue
		}
		fmt.Fprintf(&b, "  %d. %s\n", slot.Number, clues[slot.ID])
	}
	return b.String()
}
