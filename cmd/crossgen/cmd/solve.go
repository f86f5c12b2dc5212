package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crossplay/crossgen/internal/clues"
	"github.com/crossplay/crossgen/internal/csp/constraintgraph"
	"github.com/crossplay/crossgen/internal/csp/dictionary"
	"github.com/crossplay/crossgen/internal/csp/gridmodel"
	"github.com/crossplay/crossgen/internal/csp/oracle"
	"github.com/crossplay/crossgen/internal/csp/solver"
	"github.com/crossplay/crossgen/internal/gridgen"
	"github.com/crossplay/crossgen/internal/oracle/httpclient"
	"github.com/crossplay/crossgen/internal/render"
	"github.com/crossplay/crossgen/internal/wordsource"
	"github.com/crossplay/crossgen/internal/xlog"
	"github.com/spf13/cobra"
)

var (
	solveWordlist   string
	solveOutput     string
	solveFormat     string
	solveDifficulty string
	solveSeed       int64
	solveTitle      string
	solveAuthor     string
	solveClueDB     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a grid and fill it via constraint satisfaction",
	Long: `Generate a randomized, symmetric crossword grid and fill it using AC-3
arc consistency plus MRV/degree + LCV backtracking search, optionally
widening a slot's domain through a budgeted external word oracle when the
dictionary alone cannot fill it.

Examples:
  # Solve a medium-difficulty 15x15 grid from a Broda wordlist
  crossgen solve --wordlist words.txt --output puzzle.json --format json

  # Solve with oracle fallback enabled via config
  crossgen solve --wordlist words.txt --config crossgen.yaml --output puzzle.ipuz --format ipuz`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveWordlist, "wordlist", "w", "", "path to a Broda-format or plain wordlist (required)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "puzzle.json", "output file path")
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", "json", "output format (json, ipuz, text)")
	solveCmd.Flags().StringVarP(&solveDifficulty, "difficulty", "d", "medium", "grid difficulty (easy, medium, hard, expert)")
	solveCmd.Flags().Int64VarP(&solveSeed, "seed", "s", 0, "grid generation seed (0 = random)")
	solveCmd.Flags().StringVar(&solveTitle, "title", "Crossword Puzzle", "puzzle title for rendering")
	solveCmd.Flags().StringVar(&solveAuthor, "author", "crossgen", "puzzle author for rendering")
	solveCmd.Flags().StringVar(&solveClueDB, "clue-db", "./clue_cache.db", "path to the clue cache database")

	solveCmd.MarkFlagRequired("wordlist")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	difficulty, err := parseDifficulty(solveDifficulty)
	if err != nil {
		return err
	}

	dict := dictionary.New(cfg.Grid.MinWordLength)
	result, err := loadWordsInto(solveWordlist, dict)
	if err != nil {
		return fmt.Errorf("solve: failed to load wordlist: %w", err)
	}
	xlog.Info("loaded %d words from %s (%d skipped)", result.Loaded, solveWordlist, result.Skipped)

	grid, err := gridgen.Generate(gridgen.Config{
		Size:          cfg.Grid.Size,
		MinWordLength: cfg.Grid.MinWordLength,
		Difficulty:    difficulty,
		Seed:          solveSeed,
	})
	if err != nil {
		return fmt.Errorf("solve: failed to generate grid: %w", err)
	}
	xlog.Info("generated a %dx%d grid with %d slots", grid.Size, grid.Size, len(grid.Slots()))

	cg := constraintgraph.Build(grid.Slots())

	adapter, client, err := buildOracleAdapter()
	if err != nil {
		return err
	}

	solverCfg := solver.Config{
		UseInference:     cfg.Solver.UseInference,
		Deadline:         time.Duration(cfg.Solver.DeadlineSeconds) * time.Second,
		ProgressInterval: time.Duration(cfg.Solver.ProgressIntervalSeconds) * time.Second,
		Progress: func(assigned, total, backtracks, tried int) {
			xlog.Debug("progress: %d/%d slots, %d backtracks, %d assignments tried", assigned, total, backtracks, tried)
		},
	}

	s := solver.New(grid, cg, dict, adapter, solverCfg)
	solveResult := s.Solve(ctx)

	xlog.Info("solve outcome: %s (backtracks=%d ac3_revisions=%d elapsed=%s)",
		solveResult.Outcome, solveResult.Stats.Backtracks, solveResult.Stats.AC3Revisions, solveResult.Stats.Elapsed)

	if solveResult.Outcome != solver.Solved {
		return fmt.Errorf("solve: failed to fill grid: %s", solveResult.Outcome)
	}

	for _, slot := range grid.Slots() {
		if word := solveResult.Solution[slot.ID]; word != "" {
			gridmodel.ApplyWord(slot, word)
		}
	}

	clueText, err := resolveClues(ctx, grid, solveResult.Solution, client, string(difficulty))
	if err != nil {
		xlog.Warning("failed to resolve clue text: %v", err)
	}

	return writeSolveOutput(grid, solveResult.Solution, clueText)
}

func parseDifficulty(diff string) (gridgen.Difficulty, error) {
	switch strings.ToLower(diff) {
	case "easy":
		return gridgen.Easy, nil
	case "medium":
		return gridgen.Medium, nil
	case "hard":
		return gridgen.Hard, nil
	case "expert":
		return gridgen.Expert, nil
	default:
		return gridgen.Medium, fmt.Errorf("invalid difficulty: %s (must be easy, medium, hard, or expert)", diff)
	}
}

func loadWordsInto(path string, dict *dictionary.Dictionary) (wordsource.LoadResult, error) {
	if filepath.Ext(path) == ".txt" {
		if result, err := wordsource.LoadBroda(path, dict); err == nil && result.Loaded > 0 {
			return result, nil
		}
	}
	return wordsource.LoadPlain(path, dict)
}

// buildOracleAdapter returns the budgeted Adapter the solver's refill
// hook uses, and the raw Oracle (the same httpclient.Client) the clue
// cache can call directly for CluesFor, which the Adapter itself does
// not wrap.
func buildOracleAdapter() (*oracle.Adapter, oracle.Oracle, error) {
	if !cfg.Oracle.Enabled {
		return nil, nil, nil
	}
	if cfg.Oracle.BaseURL == "" {
		return nil, nil, fmt.Errorf("solve: oracle.enabled is true but oracle.base_url is empty")
	}

	client := httpclient.New(httpclient.Config{
		BaseURL: cfg.Oracle.BaseURL,
		APIKey:  cfg.Oracle.APIKey,
	})

	perKind := make(map[oracle.Kind]int, len(cfg.Oracle.PerKindCaps))
	for k, v := range cfg.Oracle.PerKindCaps {
		perKind[oracle.Kind(k)] = v
	}
	budget := oracle.NewBudget(cfg.Oracle.MaxTotalCalls, perKind)

	policy := oracle.PolicyFallback
	if cfg.Oracle.OnLimitReached == "fail" {
		policy = oracle.PolicyFail
	}

	return oracle.NewAdapter(client, budget, policy), client, nil
}

func resolveClues(ctx context.Context, grid *gridmodel.GridModel, sol solver.Solution, src oracle.Oracle, difficulty string) (render.Clues, error) {
	cache, err := clues.Open(solveClueDB)
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	slots := grid.Slots()
	words := make([]oracle.Word, 0, len(slots))
	for _, slot := range slots {
		if w := sol[slot.ID]; w != "" {
			words = append(words, w)
		}
	}

	resolved, err := cache.Resolve(ctx, src, words, difficulty)
	if err != nil {
		return nil, err
	}

	out := make(render.Clues, len(slots))
	for _, slot := range slots {
		if text, ok := resolved[sol[slot.ID]]; ok {
			out[slot.ID] = text
		}
	}
	return out, nil
}

func writeSolveOutput(grid *gridmodel.GridModel, sol solver.Solution, clueText render.Clues) error {
	var data []byte
	var err error

	switch solveFormat {
	case "json":
		data, err = render.ToJSON(grid, sol, solveTitle, solveAuthor, clueText)
	case "ipuz":
		data, err = render.ToIPuz(grid, sol, solveTitle, solveAuthor, clueText)
	case "text":
		data = []byte(render.FormatText(grid) + "\n" + render.FormatClueList(grid, clueText))
	default:
		return fmt.Errorf("solve: unsupported format %q (must be json, ipuz, or text)", solveFormat)
	}
	if err != nil {
		return fmt.Errorf("solve: failed to render output: %w", err)
	}

	if err := os.WriteFile(solveOutput, data, 0644); err != nil {
		return fmt.Errorf("solve: failed to write %s: %w", solveOutput, err)
	}
	xlog.Info("wrote %s", solveOutput)
	return nil
}
