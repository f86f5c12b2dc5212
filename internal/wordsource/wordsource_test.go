package wordsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crossplay/crossgen/internal/csp/dictionary"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writeFile: %v", err)
	}
	return path
}

func TestLoadBroda_ParsesWordAndScore(t *testing.T) {
	path := writeFile(t, "words.txt", "CAT;50\nDOG;75\nbad-line\nELEPHANT;30\n")
	dict := dictionary.New(3)

	result, err := LoadBroda(path, dict)
	if err != nil {
		t.Fatalf("LoadBroda: %v", err)
	}
	if result.Loaded != 3 {
		t.Errorf("Loaded = %d, want 3", result.Loaded)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if _, ok := dict.IndexOf("CAT"); !ok {
		t.Error("expected CAT to be loaded")
	}
}

func TestLoadBroda_RejectsTooShortWords(t *testing.T) {
	path := writeFile(t, "words.txt", "AT;10\nCAT;20\n")
	dict := dictionary.New(3)

	result, err := LoadBroda(path, dict)
	if err != nil {
		t.Fatalf("LoadBroda: %v", err)
	}
	if result.Loaded != 1 || result.Skipped != 1 {
		t.Errorf("Loaded=%d Skipped=%d, want 1/1 (AT is below MinWordLength)", result.Loaded, result.Skipped)
	}
}

func TestLoadPlain_OneWordPerLine(t *testing.T) {
	path := writeFile(t, "words.txt", "cat\nDOG\n  era  \n")
	dict := dictionary.New(3)

	result, err := LoadPlain(path, dict)
	if err != nil {
		t.Fatalf("LoadPlain: %v", err)
	}
	if result.Loaded != 3 {
		t.Errorf("Loaded = %d, want 3", result.Loaded)
	}
	if _, ok := dict.IndexOf("ERA"); !ok {
		t.Error("expected ERA to be uppercased and loaded")
	}
}

func TestLoadBroda_MissingFile(t *testing.T) {
	dict := dictionary.New(3)
	if _, err := LoadBroda("/nonexistent/path.txt", dict); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadBroda_StreamReader(t *testing.T) {
	dict := dictionary.New(3)
	result, err := loadBroda(strings.NewReader("CAT;10\nDOG;20\n"), dict)
	if err != nil {
		t.Fatalf("loadBroda: %v", err)
	}
	if result.Loaded != 2 {
		t.Errorf("Loaded = %d, want 2", result.Loaded)
	}
}
