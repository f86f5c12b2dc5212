package gridmodel

// SetBlock sets (r, c) and its 180-degree rotational mirror to Block in one
// atomic step, per the symmetry invariant: cell(r,c) is Block iff
// cell(N-1-r, N-1-c) is Block. Returns ErrOutOfBounds if the coordinates
// exceed the grid.
func (g *GridModel) SetBlock(r, c int) error {
	if !g.InBounds(r, c) {
		return &ErrOutOfBounds{Row: r, Col: c, Size: g.Size}
	}

	mr, mc := g.Size-1-r, g.Size-1-c
	g.cells[r][c].Kind = Block
	g.cells[r][c].Letter = 0
	g.cells[mr][mc].Kind = Block
	g.cells[mr][mc].Letter = 0
	return nil
}

// IsSymmetric reports whether the grid currently satisfies 180-degree
// rotational symmetry. SetBlock always preserves this, so a false result
// only arises from a grid built directly from external input (§6).
func (g *GridModel) IsSymmetric() bool {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			mr, mc := g.Size-1-r, g.Size-1-c
			if (g.cells[r][c].Kind == Block) != (g.cells[mr][mc].Kind == Block) {
				return false
			}
		}
	}
	return true
}

// AsymmetricCells returns every cell coordinate that violates the symmetry
// invariant, for structural-error reporting (§7).
func (g *GridModel) AsymmetricCells() [][2]int {
	var bad [][2]int
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			mr, mc := g.Size-1-r, g.Size-1-c
			if (g.cells[r][c].Kind == Block) != (g.cells[mr][mc].Kind == Block) {
				bad = append(bad, [2]int{r, c})
			}
		}
	}
	return bad
}
