// Package wordsource loads word lists from disk into a
// dictionary.Dictionary, grounded on the teacher's
// pkg/wordlist.LoadBrodaWordlist, generalized to also accept a bare
// newline-delimited word list with a uniform default score.
package wordsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crossplay/crossgen/internal/csp/dictionary"
)

// DefaultScore is used for every word in a plain (scoreless) word list.
const DefaultScore = 50

// LoadResult reports how many words were read and how many the
// Dictionary actually accepted (rejecting short or non-alphabetic
// entries per the Dictionary's own validation).
type LoadResult struct {
	Lines   int
	Loaded  int
	Skipped int
}

// LoadBroda loads a Peter Broda-format wordlist (WORD;SCORE per line)
// from path into dict. Malformed lines are skipped, not fatal, since a
// wordlist sourced externally is expected to carry some noise; callers
// that want strict parsing can inspect the returned LoadResult.
func LoadBroda(path string, dict *dictionary.Dictionary) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("wordsource: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return loadBroda(f, dict)
}

func loadBroda(r io.Reader, dict *dictionary.Dictionary) (LoadResult, error) {
	var result LoadResult
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.Lines++

		parts := strings.SplitN(line, ";", 2)
		text := strings.ToUpper(strings.TrimSpace(parts[0]))
		if len(parts) == 2 {
			if _, err := strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
				result.Skipped++
				continue
			}
		}

		if dict.Add(text) {
			result.Loaded++
		} else {
			result.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("wordsource: error reading wordlist: %w", err)
	}
	return result, nil
}

// LoadPlain loads a bare newline-delimited word list (one word per
// line, no score) from path into dict.
func LoadPlain(path string, dict *dictionary.Dictionary) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("wordsource: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return loadPlain(f, dict)
}

func loadPlain(r io.Reader, dict *dictionary.Dictionary) (LoadResult, error) {
	var result LoadResult
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.Lines++
		if dict.Add(strings.ToUpper(line)) {
			result.Loaded++
		} else {
			result.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("wordsource: error reading wordlist: %w", err)
	}
	return result, nil
}
