package cmd

import (
	"fmt"
	"os"

	"github.com/crossplay/crossgen/internal/config"
	"github.com/crossplay/crossgen/internal/xlog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int

	// cfg is the parsed run configuration, ready once initConfig has run.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "crossgen",
	Short: "Crossword puzzle generator CLI",
	Long: `crossgen is a command-line tool for generating, validating, and converting crossword
puzzles.

It uses constraint satisfaction (AC-3 + backtracking with MRV/degree and LCV
ordering) to fill grids with words from a Broda-format wordlist, optionally
widening a slot's domain through a budgeted external word oracle.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in defaults, see internal/config)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func initConfig() {
	xlog.Configure(verbosity)

	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crossgen: failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if cfgFile != "" {
		xlog.Info("using config file: %s", cfgFile)
	}
}
