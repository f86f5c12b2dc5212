package oracle

import "context"

// Null is the zero-value Oracle used when oracle.enabled=false: every
// call returns an empty result and a nil error, never consuming budget
// (callers typically never even construct an Adapter around it —
// NewAdapter(nil, ...) is the usual spelling of "no oracle" — but Null
// exists for code paths that want a non-nil Oracle value).
type Null struct{}

func (Null) WordsMatching(ctx context.Context, pattern string, count int, exclude map[string]struct{}) ([]Word, error) {
	return nil, nil
}

func (Null) ThemedWords(ctx context.Context, topic string, count, lenMin, lenMax int) ([]ThemedWord, error) {
	return nil, nil
}

func (Null) CluesFor(ctx context.Context, words []Word) (map[Word]Clue, error) {
	return nil, nil
}
