package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/crossplay/crossgen/internal/csp/dictionary"
	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/gridgen"
	"github.com/spf13/cobra"
)

var (
	statsWordlist   string
	statsGridFile   string
	statsSize       int
	statsDifficulty string
	statsSeed       int64
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report dictionary and grid diagnostics",
	Long: `Report per-length word counts for a wordlist and, against either a
supplied grid or a freshly generated one, the average number of candidate
words each slot starts with before any constraint propagation runs.

Examples:
  # Dictionary-only stats
  crossgen stats --wordlist words.txt

  # Stats against a specific grid file (as produced by "crossgen solve --format json")
  crossgen stats --wordlist words.txt --grid puzzle.json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsWordlist, "wordlist", "w", "", "path to a Broda-format or plain wordlist (required)")
	statsCmd.Flags().StringVarP(&statsGridFile, "grid", "g", "", "existing puzzle JSON file to report slot diagnostics against (optional; a grid is generated if omitted)")
	statsCmd.Flags().IntVar(&statsSize, "size", 15, "grid size to generate when --grid is omitted")
	statsCmd.Flags().StringVarP(&statsDifficulty, "difficulty", "d", "medium", "grid difficulty to generate when --grid is omitted")
	statsCmd.Flags().Int64VarP(&statsSeed, "seed", "s", 0, "grid generation seed (0 = random)")

	statsCmd.MarkFlagRequired("wordlist")
}

func runStats(cmd *cobra.Command, args []string) error {
	dict := dictionary.New(cfg.Grid.MinWordLength)
	result, err := loadWordsInto(statsWordlist, dict)
	if err != nil {
		return fmt.Errorf("stats: failed to load wordlist: %w", err)
	}

	grid, err := loadOrGenerateStatsGrid(dict)
	if err != nil {
		return err
	}

	fmt.Printf("\nDictionary Statistics\n")
	fmt.Printf("======================\n")
	fmt.Printf("Source:  %s\n", statsWordlist)
	fmt.Printf("Loaded:  %d words (%d skipped)\n\n", result.Loaded, result.Skipped)
	displayWordCountsByLength(dict)

	fmt.Printf("\nSlot Diagnostics\n")
	fmt.Printf("================\n")
	displaySlotDomainSizes(grid, dict)

	return nil
}

func loadOrGenerateStatsGrid(dict *dictionary.Dictionary) (*gridmodel.GridModel, error) {
	if statsGridFile == "" {
		difficulty, err := parseDifficulty(statsDifficulty)
		if err != nil {
			return nil, err
		}
		grid, err := gridgen.Generate(gridgen.Config{
			Size:          statsSize,
			MinWordLength: cfg.Grid.MinWordLength,
			Difficulty:    difficulty,
			Seed:          statsSeed,
		})
		if err != nil {
			return nil, fmt.Errorf("stats: failed to generate grid: %w", err)
		}
		return grid, nil
	}

	data, err := os.ReadFile(statsGridFile)
	if err != nil {
		return nil, fmt.Errorf("stats: failed to read %s: %w", statsGridFile, err)
	}
	var doc puzzleFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("stats: failed to parse %s: %w", statsGridFile, err)
	}
	grid := buildGridFromLetters(doc.Grid)
	grid.FindSlots()
	return grid, nil
}

func displayWordCountsByLength(dict *dictionary.Dictionary) {
	fmt.Println("Words by Length:")
	fmt.Println("----------------")

	lengths := make([]int, 0)
	seen := make(map[int]bool)
	for l := cfg.Grid.MinWordLength; l <= 30; l++ {
		if n := len(dict.WordsOfLength(l)); n > 0 && !seen[l] {
			lengths = append(lengths, l)
			seen[l] = true
		}
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Printf("  %2d letters: %d\n", l, len(dict.WordsOfLength(l)))
	}
	fmt.Printf("  %-10s: %d\n", "TOTAL", dict.Size())
}

func displaySlotDomainSizes(grid *gridmodel.GridModel, dict *dictionary.Dictionary) {
	slots := grid.Slots()
	if len(slots) == 0 {
		fmt.Println("  grid has no slots")
		return
	}

	var across, down, total int
	for _, slot := range slots {
		n := len(dict.WordsOfLength(slot.Length))
		total += n
		if slot.Direction == gridmodel.Across {
			across++
		} else {
			down++
		}
	}

	fmt.Printf("  Slots:            %d (%d across, %d down)\n", len(slots), across, down)
	fmt.Printf("  Avg domain size:  %.1f candidate words per slot\n", float64(total)/float64(len(slots)))
}
