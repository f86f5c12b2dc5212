// Package render converts a solved GridModel into the output formats a
// user-facing tool hands back: a compact JSON document, the ipuz web
// format, and a plain-text grid for terminal display. Grounded on the
// teacher's pkg/output/{json,ipuz}.go, generalized from
// internal/models.Puzzle to gridmodel.GridModel + csp/solver.Solution.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/csp/solver"
	"github.com/google/uuid"
)

// ClueJSON is one numbered clue in the JSON export, pairing the clue
// text with the answer the solver found for it.
type ClueJSON struct {
	Number int    `json:"number"`
	Text   string `json:"text,omitempty"`
	Answer string `json:"answer"`
	Length int    `json:"length"`
}

// PuzzleJSON is the top-level JSON export shape. ID is a fresh UUID
// stamped at render time, not a stable identity for the grid itself —
// re-rendering the same Solution produces a different ID.
type PuzzleJSON struct {
	ID     string     `json:"id"`
	Title  string     `json:"title,omitempty"`
	Author string     `json:"author,omitempty"`
	Grid   [][]string `json:"grid"`
	Across []ClueJSON `json:"across"`
	Down   []ClueJSON `json:"down"`
}

// Clues maps a solved slot to clue text, typically populated via
// internal/clues.Cache.Resolve. A slot absent from the map renders with
// an empty Text field.
type Clues map[gridmodel.SlotID]string

// FormatJSON builds a PuzzleJSON from a solved grid. The grid letters,
// clue numbers and block layout are read from g's cells, so an open cell
// whose letter was never written with ApplyWord renders as ""; sol
// supplies only each clue entry's Answer.
func FormatJSON(g *gridmodel.GridModel, sol solver.Solution, title, author string, clues Clues) *PuzzleJSON {
	grid := make([][]string, g.Size)
	for r := 0; r < g.Size; r++ {
		grid[r] = make([]string, g.Size)
		for c := 0; c < g.Size; c++ {
			cell := g.Cell(r, c)
			if cell.Kind == gridmodel.Block {
				grid[r][c] = "."
			} else if cell.Letter != 0 {
				grid[r][c] = string(cell.Letter)
			} else {
				grid[r][c] = ""
			}
		}
	}

	var across, down []ClueJSON
	for _, slot := range g.Slots() {
		entry := ClueJSON{
			Number: slot.Number,
			Text:   clues[slot.ID],
			Answer: sol[slot.ID],
			Length: slot.Length,
		}
		if slot.Direction == gridmodel.Across {
			across = append(across, entry)
		} else {
			down = append(down, entry)
		}
	}

	return &PuzzleJSON{
		ID:     uuid.NewString(),
		Title:  title,
		Author: author,
		Grid:   grid,
		Across: across,
		Down:   down,
	}
}

// ToJSON marshals a solved grid to indented JSON bytes.
func ToJSON(g *gridmodel.GridModel, sol solver.Solution, title, author string, clues Clues) ([]byte, error) {
	doc := FormatJSON(g, sol, title, author, clues)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: failed to marshal JSON: %w", err)
	}
	return data, nil
}
