package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/csp/solver"
	"github.com/crossplay/crossgen/internal/render"
	"github.com/spf13/cobra"
)

var (
	convertInput  string
	convertOutput string
	convertFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Render a crossgen JSON puzzle to another format",
	Long: `Read a puzzle previously written by "crossgen solve --format json" and
render it to ipuz or plain text.

Examples:
  # Convert a solved JSON puzzle to ipuz
  crossgen convert --input puzzle.json --output puzzle.ipuz --format ipuz

  # Convert a solved JSON puzzle to plain text
  crossgen convert --input puzzle.json --output puzzle.txt --format text`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input crossgen JSON puzzle file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file path (required)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "target format: ipuz or text (required)")

	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	convertCmd.MarkFlagRequired("format")
}

func runConvert(cmd *cobra.Command, args []string) error {
	targetFormat := strings.ToLower(convertFormat)
	if targetFormat != "ipuz" && targetFormat != "text" {
		return fmt.Errorf("convert: unsupported format %q: must be ipuz or text", convertFormat)
	}

	data, err := os.ReadFile(convertInput)
	if err != nil {
		return fmt.Errorf("convert: failed to read %s: %w", convertInput, err)
	}

	var doc render.PuzzleJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("convert: failed to parse %s as a crossgen JSON puzzle: %w", convertInput, err)
	}

	g, sol, clueText := rebuildFromJSON(&doc)

	var out []byte
	switch targetFormat {
	case "ipuz":
		out, err = render.ToIPuz(g, sol, doc.Title, doc.Author, clueText)
		if err != nil {
			return fmt.Errorf("convert: failed to render ipuz: %w", err)
		}
	case "text":
		out = []byte(render.FormatText(g) + "\n" + render.FormatClueList(g, clueText))
	}

	if err := os.WriteFile(convertOutput, out, 0644); err != nil {
		return fmt.Errorf("convert: failed to write %s: %w", convertOutput, err)
	}
	fmt.Printf("Converted %s -> %s (%s)\n", convertInput, convertOutput, targetFormat)
	return nil
}

// rebuildFromJSON reconstructs a GridModel, Solution, and Clues from a
// render.PuzzleJSON document, the inverse of render.FormatJSON.
func rebuildFromJSON(doc *render.PuzzleJSON) (*gridmodel.GridModel, solver.Solution, render.Clues) {
	g := buildGridFromLetters(doc.Grid)
	g.FindSlots()

	byNumberDir := make(map[string]render.ClueJSON)
	for _, c := range doc.Across {
		byNumberDir[fmt.Sprintf("A%d", c.Number)] = c
	}
	for _, c := range doc.Down {
		byNumberDir[fmt.Sprintf("D%d", c.Number)] = c
	}

	sol := make(solver.Solution)
	clueText := make(render.Clues)
	for _, slot := range g.Slots() {
		prefix := "A"
		if slot.Direction == gridmodel.Down {
			prefix = "D"
		}
		entry, ok := byNumberDir[fmt.Sprintf("%s%d", prefix, slot.Number)]
		if !ok {
			continue
		}
		sol[slot.ID] = entry.Answer
		clueText[slot.ID] = entry.Text
		gridmodel.ApplyWord(slot, entry.Answer)
	}

	return g, sol, clueText
}
