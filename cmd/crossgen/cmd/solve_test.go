package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crossplay/crossgen/internal/csp/dictionary"
	"github.com/crossplay/crossgen/internal/gridgen"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input     string
		expected  gridgen.Difficulty
		wantError bool
	}{
		{"easy", gridgen.Easy, false},
		{"Medium", gridgen.Medium, false},
		{"HARD", gridgen.Hard, false},
		{"expert", gridgen.Expert, false},
		{"nightmare", gridgen.Medium, true},
		{"", gridgen.Medium, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDifficulty(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("parseDifficulty(%q) expected an error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDifficulty(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseDifficulty(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadWordsInto_PlainWordlist(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "words.txt")
	content := "CAT\nDOG\nBIRD\nFISH\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test wordlist: %v", err)
	}

	dict := dictionary.New(3)
	result, err := loadWordsInto(path, dict)
	if err != nil {
		t.Fatalf("loadWordsInto returned an error: %v", err)
	}
	if result.Loaded == 0 {
		t.Error("expected at least one word to load")
	}
}

func TestBuildOracleAdapter_DisabledReturnsNils(t *testing.T) {
	old := cfg
	defer func() { cfg = old }()

	cfg.Oracle.Enabled = false

	adapter, src, err := buildOracleAdapter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adapter != nil || src != nil {
		t.Error("expected nil adapter and source when oracle is disabled")
	}
}

func TestBuildOracleAdapter_MissingBaseURLIsAnError(t *testing.T) {
	old := cfg
	defer func() { cfg = old }()

	cfg.Oracle.Enabled = true
	cfg.Oracle.BaseURL = ""

	if _, _, err := buildOracleAdapter(); err == nil {
		t.Error("expected an error when oracle is enabled without a base URL")
	}
}
