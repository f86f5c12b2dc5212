package clues

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/crossplay/crossgen/internal/csp/oracle"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clues.db")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSaveAndGet_RoundTrips(t *testing.T) {
	ctx := context.Background()
	c := openTestCache(t)

	if err := c.Save(ctx, "CAT", "Feline pet", "easy"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	clue, ok := c.Get(ctx, "CAT", "easy")
	if !ok || clue != "Feline pet" {
		t.Errorf("Get = (%q, %v), want (\"Feline pet\", true)", clue, ok)
	}
}

func TestGet_MissReturnsFalse(t *testing.T) {
	c := openTestCache(t)
	if _, ok := c.Get(context.Background(), "NOPE", "easy"); ok {
		t.Error("expected a cache miss for an unseeded word")
	}
}

func TestSave_RejectsEmptyFields(t *testing.T) {
	c := openTestCache(t)
	if err := c.Save(context.Background(), "", "clue", "easy"); err == nil {
		t.Error("expected an error for an empty word")
	}
}

type fakeSource struct {
	clues map[oracle.Word]oracle.Clue
}

func (f *fakeSource) WordsMatching(ctx context.Context, pattern string, count int, exclude map[string]struct{}) ([]oracle.Word, error) {
	return nil, nil
}
func (f *fakeSource) ThemedWords(ctx context.Context, topic string, count, lenMin, lenMax int) ([]oracle.ThemedWord, error) {
	return nil, nil
}
func (f *fakeSource) CluesFor(ctx context.Context, words []oracle.Word) (map[oracle.Word]oracle.Clue, error) {
	out := make(map[oracle.Word]oracle.Clue)
	for _, w := range words {
		if clue, ok := f.clues[w]; ok {
			out[w] = clue
		}
	}
	return out, nil
}

func TestResolve_FillsMissesFromSourceAndCachesThem(t *testing.T) {
	ctx := context.Background()
	c := openTestCache(t)
	if err := c.Save(ctx, "CAT", "Feline pet", "medium"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	src := &fakeSource{clues: map[oracle.Word]oracle.Clue{"DOG": "Canine companion"}}

	result, err := c.Resolve(ctx, src, []oracle.Word{"CAT", "DOG"}, "medium")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result["CAT"] != "Feline pet" || result["DOG"] != "Canine companion" {
		t.Errorf("Resolve = %+v", result)
	}

	if clue, ok := c.Get(ctx, "DOG", "medium"); !ok || clue != "Canine companion" {
		t.Error("expected Resolve to have written DOG's clue back to the cache")
	}
}
