package gridmodel

import "github.com/katalvlaran/lvlath/gridgraph"

// IsConnected reports whether the subgraph of Open cells (4-neighborhood) is
// a single connected component. Open cells are treated as land (value 1),
// Block cells as water (value 0), and the check is delegated to
// gridgraph.ConnectedComponents rather than a hand-rolled flood fill.
func (g *GridModel) IsConnected() bool {
	seed := g.findOpenSeed()
	if seed == nil {
		// All-Block grid: trivially symmetric, zero slots, vacuously connected.
		return true
	}

	values := make([][]int, g.Size)
	for r := 0; r < g.Size; r++ {
		values[r] = make([]int, g.Size)
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c].Kind == Open {
				values[r][c] = 1
			}
		}
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{
		LandThreshold: 1,
		Conn:          gridgraph.Conn4,
	})
	if err != nil {
		// A non-empty, rectangular grid can never trigger NewGridGraph's
		// errors; treat any such failure as disconnected defensively.
		return false
	}

	components := gg.ConnectedComponents()
	landComponents := components[1]
	return len(landComponents) == 1
}

func (g *GridModel) findOpenSeed() *Cell {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c].Kind == Open {
				return g.cells[r][c]
			}
		}
	}
	return nil
}
