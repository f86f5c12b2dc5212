package gridmodel

import "fmt"

// Violation names one concrete structural defect, per spec §7's
// "Structural" error category: "surfaced with a list of concrete
// violations".
type Violation struct {
	Kind    string // "asymmetry", "disconnected", "short_word", "unchecked"
	Row     int
	Col     int
	Message string
}

func (v Violation) String() string {
	return v.Message
}

// Validate runs every structural check from spec §3/§6/§8 against the
// grid's current Block layout and, once FindSlots has been called, its
// slots. It never mutates the grid. An empty return means the grid is
// structurally valid.
func (g *GridModel) Validate() []Violation {
	var violations []Violation

	for _, rc := range g.AsymmetricCells() {
		violations = append(violations, Violation{
			Kind: "asymmetry", Row: rc[0], Col: rc[1],
			Message: fmt.Sprintf("cell (%d,%d) breaks 180-degree rotational symmetry", rc[0], rc[1]),
		})
	}

	if !g.IsConnected() {
		violations = append(violations, Violation{
			Kind:    "disconnected",
			Message: "grid has disconnected regions: not all open cells are reachable",
		})
	}

	for _, rc := range g.shortRuns() {
		violations = append(violations, Violation{
			Kind: "short_word", Row: rc[0], Col: rc[1],
			Message: fmt.Sprintf("run starting at (%d,%d) is shorter than the minimum word length %d", rc[0], rc[1], g.MinWordLength),
		})
	}

	if g.slots != nil {
		for rc, count := range g.CheckedCounts() {
			if count != 2 {
				violations = append(violations, Violation{
					Kind: "unchecked", Row: rc[0], Col: rc[1],
					Message: fmt.Sprintf("open cell (%d,%d) is covered by %d slots, expected 2", rc[0], rc[1], count),
				})
			}
		}
	}

	return violations
}

// shortRuns finds every maximal Open run (length > 1) shorter than
// MinWordLength, in both directions.
func (g *GridModel) shortRuns() [][2]int {
	var bad [][2]int

	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c].Kind != Open {
				continue
			}
			if c == 0 || g.cells[r][c-1].Kind == Block {
				n := g.runLength(r, c, 0, 1)
				if n > 1 && n < g.MinWordLength {
					bad = append(bad, [2]int{r, c})
				}
			}
			if r == 0 || g.cells[r-1][c].Kind == Block {
				n := g.runLength(r, c, 1, 0)
				if n > 1 && n < g.MinWordLength {
					bad = append(bad, [2]int{r, c})
				}
			}
		}
	}

	return bad
}
