package oracle

import (
	"context"
	"strings"
)

type cacheKey struct {
	pattern string
	hint    string
}

// Adapter wraps an Oracle with budget accounting and a pattern→words
// cache, so repeated requests for the same (pattern, hint) never
// consume budget twice.
type Adapter struct {
	underlying Oracle
	budget     *Budget
	policy     LimitPolicy
	cache      map[cacheKey][]Word
}

// NewAdapter builds an Adapter. underlying may be nil, in which case
// RequestWords always returns an empty result without consuming budget
// (the Null oracle case, per spec §4.6's oracle.enabled=false).
func NewAdapter(underlying Oracle, budget *Budget, policy LimitPolicy) *Adapter {
	return &Adapter{
		underlying: underlying,
		budget:     budget,
		policy:     policy,
		cache:      make(map[cacheKey][]Word),
	}
}

// Enabled reports whether this adapter has a real oracle behind it.
func (a *Adapter) Enabled() bool {
	return a.underlying != nil
}

// Policy returns the adapter's refusal policy.
func (a *Adapter) Policy() LimitPolicy {
	return a.policy
}

// RequestWords asks the oracle for up to count words matching pattern,
// excluding the given set, per spec §4.6's request_words. A cache hit
// is filtered against exclude and returned without touching the
// budget. On cap breach it returns (nil, ErrRefused).
func (a *Adapter) RequestWords(ctx context.Context, pattern string, count int, exclude map[string]struct{}) ([]Word, error) {
	if a.underlying == nil {
		return nil, nil
	}

	key := cacheKey{pattern: pattern, hint: ""}
	if cached, ok := a.cache[key]; ok {
		return filterExcluded(cached, exclude), nil
	}

	if !a.budget.CanCall(KindPatternMatch) {
		return nil, &ErrRefused{Kind: KindPatternMatch}
	}

	words, err := a.underlying.WordsMatching(ctx, pattern, count, exclude)
	a.budget.Record(KindPatternMatch, len(words), err == nil)
	if err != nil {
		return nil, err
	}

	a.cache[key] = words
	return filterExcluded(words, exclude), nil
}

func filterExcluded(words []Word, exclude map[string]struct{}) []Word {
	if len(exclude) == 0 {
		return words
	}
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if _, excluded := exclude[w]; !excluded {
			out = append(out, w)
		}
	}
	return out
}

// ConformsToPattern reports whether word matches pattern letter-for-
// letter at every fixed position ('.' = unknown), used as the defense-
// in-depth filter spec §4.5's oracle-refill step requires on returned
// words.
func ConformsToPattern(word, pattern string) bool {
	if len(word) != len(pattern) {
		return false
	}
	word = strings.ToUpper(word)
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '.' && pattern[i] != word[i] {
			return false
		}
	}
	return true
}
