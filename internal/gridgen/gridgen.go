// Package gridgen synthesizes a blank GridModel with a randomized,
// symmetric block layout, grounded on the teacher's
// pkg/grid/generator.go and pkg/grid/seed.go. Where the teacher worked
// directly on its own pkg/grid.Grid, this generalizes the same
// retry-until-valid algorithm to gridmodel.GridModel so the result
// feeds straight into the CSP solver.
package gridgen

import (
	"errors"
	"math/rand"
	"time"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
)

// Difficulty selects a preset black-square density.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// densityFor maps a difficulty to its black-square fraction. These are
// the same conservative values the teacher tuned for random placement,
// which produces short words more readily than manual construction.
func densityFor(d Difficulty) float64 {
	switch d {
	case Easy:
		return 0.06
	case Medium:
		return 0.08
	case Hard:
		return 0.10
	case Expert:
		return 0.12
	default:
		return 0.08
	}
}

// ErrGenerationFailed is returned when no valid grid was found within
// MaxAttempts tries.
var ErrGenerationFailed = errors.New("gridgen: failed to generate a valid grid after maximum attempts")

// MaxAttempts bounds the retry loop in Generate.
const MaxAttempts = 1000

// Config parameterizes Generate.
type Config struct {
	Size          int
	MinWordLength int
	Difficulty    Difficulty
	BlackDensity  float64 // overrides Difficulty's preset when non-zero
	Seed          int64   // 0 means derive a seed from the wall clock
}

// Generate builds a GridModel with a random, 180-degree symmetric block
// layout, retrying with a new seed until the grid is connected and
// carries no too-short runs. It calls FindSlots on the returned grid
// before handing it back, so the result is ready for
// constraintgraph.Build.
func Generate(cfg Config) (*gridmodel.GridModel, error) {
	density := cfg.BlackDensity
	if density == 0 {
		density = densityFor(cfg.Difficulty)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		g := gridmodel.New(cfg.Size, cfg.MinWordLength)
		seedBlocks(g, seed+int64(attempt), density)

		if !g.IsConnected() {
			continue
		}
		g.FindSlots()
		if hasShortRun(g) {
			continue
		}
		return g, nil
	}

	return nil, ErrGenerationFailed
}

// seedBlocks randomly places blocks in the top-left quadrant and lets
// SetBlock mirror each into the bottom-right quadrant, guaranteeing
// symmetry by construction rather than by a later enforcement pass.
// The center cell of an odd-sized grid is never a candidate, since
// SetBlock would otherwise make a grid's only bridge cell a wall.
func seedBlocks(g *gridmodel.GridModel, seed int64, density float64) {
	r := rand.New(rand.NewSource(seed))

	quadrant := g.Size / 2
	center := g.Size / 2
	targetTotal := int(float64(g.Size*g.Size) * density)
	targetInQuadrant := targetTotal / 2

	type coord struct{ row, col int }
	var candidates []coord
	for row := 0; row < quadrant; row++ {
		for col := 0; col < quadrant; col++ {
			if g.Size%2 == 1 && row == center && col == center {
				continue
			}
			candidates = append(candidates, coord{row, col})
		}
	}

	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	placed := 0
	for i := 0; i < len(candidates) && placed < targetInQuadrant; i++ {
		_ = g.SetBlock(candidates[i].row, candidates[i].col)
		placed++
	}
}

func hasShortRun(g *gridmodel.GridModel) bool {
	for _, v := range g.Validate() {
		if v.Kind == "short_word" {
			return true
		}
	}
	return false
}
