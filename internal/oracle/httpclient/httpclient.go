// Package httpclient is the Real oracle.Oracle implementation: it talks
// to a configurable HTTP endpoint that serves pattern-matched words,
// themed word lists, and clues as JSON, grounded on the teacher's
// internal/puzzle LLMClient's http.Client + JSON request/response shape.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crossplay/crossgen/internal/csp/oracle"
)

// Config holds the HTTP oracle's connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultTimeout matches the teacher's LLM client's conservative
// default for a slow external call.
const DefaultTimeout = 30 * time.Second

// Client is the Real oracle, backed by an HTTP word service.
type Client struct {
	config Config
	http   *http.Client
}

// New builds a Client. A zero Timeout uses DefaultTimeout.
func New(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

type wordsMatchingRequest struct {
	Pattern string   `json:"pattern"`
	Count   int      `json:"count"`
	Exclude []string `json:"exclude,omitempty"`
}

type wordsMatchingResponse struct {
	Words []string `json:"words"`
	Error string   `json:"error,omitempty"`
}

// WordsMatching implements oracle.Oracle.
func (c *Client) WordsMatching(ctx context.Context, pattern string, count int, exclude map[string]struct{}) ([]oracle.Word, error) {
	reqBody := wordsMatchingRequest{Pattern: pattern, Count: count, Exclude: keys(exclude)}

	var resp wordsMatchingResponse
	if err := c.post(ctx, "/v1/words_matching", reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("oracle: words_matching: %s", resp.Error)
	}
	return resp.Words, nil
}

type themedWordsRequest struct {
	Topic  string `json:"topic"`
	Count  int    `json:"count"`
	LenMin int    `json:"len_min"`
	LenMax int    `json:"len_max"`
}

type themedWordsResponse struct {
	Words []struct {
		Word string `json:"word"`
		Clue string `json:"clue"`
	} `json:"words"`
	Error string `json:"error,omitempty"`
}

// ThemedWords implements oracle.Oracle.
func (c *Client) ThemedWords(ctx context.Context, topic string, count, lenMin, lenMax int) ([]oracle.ThemedWord, error) {
	reqBody := themedWordsRequest{Topic: topic, Count: count, LenMin: lenMin, LenMax: lenMax}

	var resp themedWordsResponse
	if err := c.post(ctx, "/v1/themed_words", reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("oracle: themed_words: %s", resp.Error)
	}

	out := make([]oracle.ThemedWord, len(resp.Words))
	for i, w := range resp.Words {
		out[i] = oracle.ThemedWord{Word: w.Word, Clue: w.Clue}
	}
	return out, nil
}

type cluesForRequest struct {
	Words []string `json:"words"`
}

type cluesForResponse struct {
	Clues map[string]string `json:"clues"`
	Error string            `json:"error,omitempty"`
}

// CluesFor implements oracle.Oracle.
func (c *Client) CluesFor(ctx context.Context, words []oracle.Word) (map[oracle.Word]oracle.Clue, error) {
	var resp cluesForResponse
	if err := c.post(ctx, "/v1/clues_for", cluesForRequest{Words: words}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("oracle: clues_for: %s", resp.Error)
	}

	out := make(map[oracle.Word]oracle.Clue, len(resp.Clues))
	for w, c := range resp.Clues {
		out[w] = c
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("oracle: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("oracle: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("oracle: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("oracle: failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oracle: API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("oracle: failed to parse response: %w", err)
	}
	return nil
}

func keys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
