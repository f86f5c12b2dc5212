package gridmodel

import "sort"

// FindSlots scans the grid left-to-right, top-to-bottom: it assigns clue
// numbers, discovers every Across and Down slot of at least
// MinWordLength cells, and populates GridModel.Slots() in clue-number
// order (Across before Down on a shared number). A cell starting both an
// Across and a Down slot shares one clue number between them. The scan is
// deterministic: calling FindSlots twice yields the same list in the same
// order.
func (g *GridModel) FindSlots() []*Slot {
	g.slots = nil
	clueNumber := 0

	// First pass: assign numbers to every cell that starts an Across or Down run.
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			cell := g.cells[r][c]
			if cell.Kind == Block {
				continue
			}

			startsAcross := (c == 0 || g.cells[r][c-1].Kind == Block) &&
				c+1 < g.Size && g.cells[r][c+1].Kind == Open &&
				g.runLength(r, c, 0, 1) >= g.MinWordLength

			startsDown := (r == 0 || g.cells[r-1][c].Kind == Block) &&
				r+1 < g.Size && g.cells[r+1][c].Kind == Open &&
				g.runLength(r, c, 1, 0) >= g.MinWordLength

			if startsAcross || startsDown {
				clueNumber++
				cell.Number = clueNumber
			} else {
				cell.Number = 0
			}
		}
	}

	// Second pass: materialize Across slots.
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c].Kind == Block {
				continue
			}
			if c != 0 && g.cells[r][c-1].Kind == Open {
				continue
			}
			cells := g.run(r, c, 0, 1)
			if len(cells) < g.MinWordLength {
				continue
			}
			g.slots = append(g.slots, &Slot{
				ID:        SlotID(len(g.slots)),
				Number:    g.cells[r][c].Number,
				Direction: Across,
				StartRow:  r,
				StartCol:  c,
				Length:    len(cells),
				Cells:     cells,
			})
		}
	}

	// Third pass: materialize Down slots.
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c].Kind == Block {
				continue
			}
			if r != 0 && g.cells[r-1][c].Kind == Open {
				continue
			}
			cells := g.run(r, c, 1, 0)
			if len(cells) < g.MinWordLength {
				continue
			}
			g.slots = append(g.slots, &Slot{
				ID:        SlotID(len(g.slots)),
				Number:    g.cells[r][c].Number,
				Direction: Down,
				StartRow:  r,
				StartCol:  c,
				Length:    len(cells),
				Cells:     cells,
			})
		}
	}

	// Put the slots in numbering order and make each ID its index.
	sort.SliceStable(g.slots, func(i, j int) bool {
		if g.slots[i].Number != g.slots[j].Number {
			return g.slots[i].Number < g.slots[j].Number
		}
		return g.slots[i].Direction < g.slots[j].Direction
	})
	for i, s := range g.slots {
		s.ID = SlotID(i)
	}

	return g.slots
}

// runLength counts consecutive Open cells starting at (r,c) stepping by
// (dr,dc), without allocating the cell slice.
func (g *GridModel) runLength(r, c, dr, dc int) int {
	n := 0
	for g.InBounds(r, c) && g.cells[r][c].Kind == Open {
		n++
		r += dr
		c += dc
	}
	return n
}

// run collects the consecutive Open cells starting at (r,c) stepping by (dr,dc).
func (g *GridModel) run(r, c, dr, dc int) []*Cell {
	var cells []*Cell
	for g.InBounds(r, c) && g.cells[r][c].Kind == Open {
		cells = append(cells, g.cells[r][c])
		r += dr
		c += dc
	}
	return cells
}

// CheckedCounts returns, for every Open cell, how many slots cover it. A
// valid grid has exactly 2 for every Open cell (checked squares, §8).
func (g *GridModel) CheckedCounts() map[[2]int]int {
	counts := make(map[[2]int]int)
	for _, slot := range g.slots {
		for _, cell := range slot.Cells {
			counts[[2]int{cell.Row, cell.Col}]++
		}
	}
	return counts
}
