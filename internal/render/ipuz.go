package render

import (
	"encoding/json"
	"fmt"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/csp/solver"
	"github.com/google/uuid"
)

// IPuzDimensions is the ipuz "dimensions" object.
type IPuzDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IPuzClue is one [number, "text"] pair, per the ipuz clue array shape.
type IPuzClue []interface{}

// IPuzClues is the ipuz "clues" object's Across/Down arrays.
type IPuzClues struct {
	Across []IPuzClue `json:"Across"`
	Down   []IPuzClue `json:"Down"`
}

// IPuzPuzzle is the top-level ipuz document, following
// http://ipuz.org/'s crossword kind.
type IPuzPuzzle struct {
	Version    string          `json:"version"`
	Kind       []string        `json:"kind"`
	UniqueID   string          `json:"uniqueid,omitempty"`
	Title      string          `json:"title,omitempty"`
	Author     string          `json:"author,omitempty"`
	Copyright  string          `json:"copyright,omitempty"`
	Dimensions IPuzDimensions  `json:"dimensions"`
	Puzzle     [][]interface{} `json:"puzzle"`
	Solution   [][]interface{} `json:"solution"`
	Clues      IPuzClues       `json:"clues"`
}

// FormatIPuz builds an IPuzPuzzle from a solved grid. A grid cell is
// rendered as "#" for a block, its clue number for a slot start, and 0
// for a plain open cell, matching the ipuz puzzle-grid convention.
func FormatIPuz(g *gridmodel.GridModel, sol solver.Solution, title, author string, clues Clues) (*IPuzPuzzle, error) {
	if g == nil {
		return nil, fmt.Errorf("render: grid cannot be nil")
	}

	puzzleGrid := make([][]interface{}, g.Size)
	solutionGrid := make([][]interface{}, g.Size)
	for r := 0; r < g.Size; r++ {
		puzzleGrid[r] = make([]interface{}, g.Size)
		solutionGrid[r] = make([]interface{}, g.Size)
		for c := 0; c < g.Size; c++ {
			cell := g.Cell(r, c)
			if cell.Kind == gridmodel.Block {
				puzzleGrid[r][c] = "#"
				solutionGrid[r][c] = "#"
				continue
			}
			if cell.Number > 0 {
				puzzleGrid[r][c] = cell.Number
			} else {
				puzzleGrid[r][c] = 0
			}
			if cell.Letter != 0 {
				solutionGrid[r][c] = string(cell.Letter)
			} else {
				solutionGrid[r][c] = ""
			}
		}
	}

	var across, down []IPuzClue
	for _, slot := range g.Slots() {
		text := clues[slot.ID]
		entry := IPuzClue{slot.Number, text}
		if slot.Direction == gridmodel.Across {
			across = append(across, entry)
		} else {
			down = append(down, entry)
		}
	}

	copyright := ""
	if author != "" {
		copyright = fmt.Sprintf("© %s", author)
	}

	return &IPuzPuzzle{
		Version:    "http://ipuz.org/v2",
		Kind:       []string{"http://ipuz.org/crossword#1"},
		UniqueID:   uuid.NewString(),
		Title:      title,
		Author:     author,
		Copyright:  copyright,
		Dimensions: IPuzDimensions{Width: g.Size, Height: g.Size},
		Puzzle:     puzzleGrid,
		Solution:   solutionGrid,
		Clues:      IPuzClues{Across: across, Down: down},
	}, nil
}

// ToIPuz marshals a solved grid to indented ipuz JSON bytes.
func ToIPuz(g *gridmodel.GridModel, sol solver.Solution, title, author string, clues Clues) ([]byte, error) {
	doc, err := FormatIPuz(g, sol, title, author, clues)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: failed to marshal ipuz: %w", err)
	}
	return data, nil
}
