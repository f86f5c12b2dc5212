// Package stub provides a canned-response oracle.Oracle implementation
// for tests and offline demos, grounded on spec §8's oracle-refill
// scenarios (a stub that returns a fixed word list on first call).
package stub

import (
	"context"
	"sort"
	"strings"

	"github.com/crossplay/crossgen/internal/csp/oracle"
)

// Oracle returns pre-registered responses for exact pattern strings. A
// pattern with no registered response yields an empty result, never an
// error.
type Oracle struct {
	byPattern map[string][]oracle.Word
	byTopic   map[string][]oracle.ThemedWord
	clues     map[oracle.Word]oracle.Clue
}

// New builds an empty stub oracle.
func New() *Oracle {
	return &Oracle{
		byPattern: make(map[string][]oracle.Word),
		byTopic:   make(map[string][]oracle.ThemedWord),
		clues:     make(map[oracle.Word]oracle.Clue),
	}
}

// RegisterPattern sets the canned response for an exact pattern match.
func (o *Oracle) RegisterPattern(pattern string, words ...oracle.Word) *Oracle {
	o.byPattern[pattern] = words
	return o
}

// RegisterTopic sets the canned response for a themed-word request.
func (o *Oracle) RegisterTopic(topic string, words ...oracle.ThemedWord) *Oracle {
	o.byTopic[strings.ToLower(topic)] = words
	return o
}

// RegisterClue sets the canned clue for a word.
func (o *Oracle) RegisterClue(word oracle.Word, clue oracle.Clue) *Oracle {
	o.clues[word] = clue
	return o
}

// WordsMatching returns the registered response for pattern, filtered
// by exclude and capped at count. Unregistered patterns return an empty
// slice.
func (o *Oracle) WordsMatching(ctx context.Context, pattern string, count int, exclude map[string]struct{}) ([]oracle.Word, error) {
	all := o.byPattern[pattern]
	out := make([]oracle.Word, 0, len(all))
	for _, w := range all {
		if _, excluded := exclude[w]; excluded {
			continue
		}
		out = append(out, w)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

// ThemedWords returns the registered response for topic, filtered by
// the requested length range and capped at count.
func (o *Oracle) ThemedWords(ctx context.Context, topic string, count, lenMin, lenMax int) ([]oracle.ThemedWord, error) {
	all := o.byTopic[strings.ToLower(topic)]
	out := make([]oracle.ThemedWord, 0, len(all))
	for _, tw := range all {
		if len(tw.Word) < lenMin || len(tw.Word) > lenMax {
			continue
		}
		out = append(out, tw)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

// CluesFor returns the registered clue for each requested word that
// has one; words without a registered clue are omitted.
func (o *Oracle) CluesFor(ctx context.Context, words []oracle.Word) (map[oracle.Word]oracle.Clue, error) {
	out := make(map[oracle.Word]oracle.Clue)
	for _, w := range words {
		if c, ok := o.clues[w]; ok {
			out[w] = c
		}
	}
	return out, nil
}

// RegisteredPatterns returns every pattern with a canned response, sorted.
func (o *Oracle) RegisteredPatterns() []string {
	out := make([]string, 0, len(o.byPattern))
	for p := range o.byPattern {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
