// Package clues is a minimal clue lookup/cache so a solved grid can be
// rendered with clue text, grounded on the teacher's pkg/clues/cache.go.
// It swaps the teacher's database/sql + github.com/mattn/go-sqlite3
// pairing for database/sql + modernc.org/sqlite (cgo-free), and threads
// context.Context through every query to match the rest of this
// module's oracle/solver call paths.
package clues

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crossplay/crossgen/internal/csp/oracle"
	_ "modernc.org/sqlite"
)

// schema creates the clue cache table. difficulty is a free-form label,
// not constrained at the DB level: the CLI's own grid difficulty has
// four tiers (easy/medium/hard/expert, see internal/gridgen.Difficulty),
// so a fixed CHECK enum here would just drift out of sync with it again;
// validity is the caller's concern, not the schema's. The unique index
// also doubles as the de-dup key, since the same word/difficulty pair
// can be resolved more than once across separate puzzle runs.
const schema = `
CREATE TABLE IF NOT EXISTS clue_cache (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	clue TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(word, difficulty, clue)
);

CREATE INDEX IF NOT EXISTS idx_clue_cache_word_difficulty
ON clue_cache(word, difficulty);
`

// Cache stores and retrieves clue text for a (word, difficulty) pair.
type Cache struct {
	db *sql.DB
}

// Open opens path with the modernc.org/sqlite driver and ensures the
// clue_cache schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("clues: failed to open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("clues: failed to initialize schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// NewCache wraps an already-open database handle, assuming schema has
// already run against it.
func NewCache(db *sql.DB) (*Cache, error) {
	if db == nil {
		return nil, fmt.Errorf("clues: database connection is nil")
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns a random cached clue for word at the given difficulty.
// Any database error, including no rows, is reported as (_, false)
// rather than an error: a cache miss is an ordinary outcome the caller
// is expected to handle by falling back to an oracle lookup.
func (c *Cache) Get(ctx context.Context, word, difficulty string) (string, bool) {
	if c.db == nil {
		return "", false
	}

	var clue string
	err := c.db.QueryRowContext(ctx, `
		SELECT clue FROM clue_cache
		WHERE word = ? AND difficulty = ?
		ORDER BY RANDOM()
		LIMIT 1
	`, word, difficulty).Scan(&clue)
	if err != nil {
		return "", false
	}
	return clue, true
}

// Save inserts a clue into the cache. A word can be resolved more than
// once across separate Resolve calls (e.g. reusing the same cache file
// for a second puzzle); re-saving an identical (word, difficulty, clue)
// triple is a silent no-op rather than a unique-constraint error.
func (c *Cache) Save(ctx context.Context, word, clue, difficulty string) error {
	if c.db == nil {
		return fmt.Errorf("clues: database connection is nil")
	}
	if word == "" || clue == "" || difficulty == "" {
		return fmt.Errorf("clues: word, clue, and difficulty must all be non-empty")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO clue_cache (word, clue, difficulty)
		VALUES (?, ?, ?)
	`, word, clue, difficulty)
	if err != nil {
		return fmt.Errorf("clues: failed to save clue for %q: %w", word, err)
	}
	return nil
}

// Resolve fills in a clue for every word in words: a cache hit is used
// directly; a miss is looked up via src (the raw Oracle, since an
// oracle.Adapter has no CluesFor) and written back to the cache for next time. A word src cannot
// supply a clue for is simply absent from the result map.
func (c *Cache) Resolve(ctx context.Context, src oracle.Oracle, words []oracle.Word, difficulty string) (map[oracle.Word]oracle.Clue, error) {
	result := make(map[oracle.Word]oracle.Clue, len(words))

	var missing []oracle.Word
	for _, w := range words {
		if clue, ok := c.Get(ctx, w, difficulty); ok {
			result[w] = clue
		} else {
			missing = append(missing, w)
		}
	}

	if len(missing) == 0 || src == nil {
		return result, nil
	}

	fetched, err := src.CluesFor(ctx, missing)
	if err != nil {
		return result, fmt.Errorf("clues: oracle lookup failed: %w", err)
	}
	for w, clue := range fetched {
		result[w] = clue
		if err := c.Save(ctx, w, clue, difficulty); err != nil {
			return result, err
		}
	}
	return result, nil
}
