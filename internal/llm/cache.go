package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/olympiad/internal/cache"
)

// ResponseStore persists cached replies. internal/cache provides file and
// Redis implementations.
type ResponseStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// CachingProvider replays recorded replies for identical requests.
//
// Repair loops resend the same conversation expecting a different answer,
// so the key includes how many times this exact request has been seen in
// the current process: the nth identical call replays the nth recorded reply.
type CachingProvider struct {
	inner Provider
	store ResponseStore
	log   zerolog.Logger

	mu   sync.Mutex
	seen map[string]int
}

// WithCache wraps a Provider with a replay cache.
func WithCache(p Provider, store ResponseStore) Provider {
	return &CachingProvider{inner: p, store: store, log: log.Logger, seen: make(map[string]int)}
}

type cachedResponse struct {
	Text       string `json:"text"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      Usage  `json:"usage"`
}

func (c *CachingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key, err := c.key(req)
	if err != nil {
		return c.inner.Generate(ctx, req)
	}

	if data, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn().Err(err).Msg("llm cache read failed")
	} else if ok {
		var cr cachedResponse
		if err := json.Unmarshal(data, &cr); err == nil {
			c.log.Debug().Str("key", key[:12]).Str("purpose", PurposeFrom(ctx)).Msg("llm cache hit")
			return &Response{Text: cr.Text, Model: cr.Model, StopReason: cr.StopReason, Usage: cr.Usage}, nil
		}
	}

	resp, err := c.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(cachedResponse{
		Text:       resp.Text,
		Model:      resp.Model,
		StopReason: resp.StopReason,
		Usage:      resp.Usage,
	})
	if err == nil {
		if err := c.store.Save(ctx, key, data); err != nil {
			c.log.Warn().Err(err).Msg("llm cache write failed")
		}
	}
	return resp, nil
}

func (c *CachingProvider) ModelID() string {
	return c.inner.ModelID()
}

// key digests the request and numbers repeated occurrences.
func (c *CachingProvider) key(req Request) (string, error) {
	body, err := json.Marshal(struct {
		System      string    `json:"system"`
		Messages    []Message `json:"messages"`
		MaxTokens   int       `json:"max_tokens"`
		Temperature float64   `json:"temperature"`
	}{req.System, req.Messages, req.MaxTokens, req.Temperature})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	base := cache.KeyFrom(c.inner.ModelID(), string(body))

	c.mu.Lock()
	n := c.seen[base]
	c.seen[base] = n + 1
	c.mu.Unlock()

	return cache.KeyFrom(base, strconv.Itoa(n)), nil
}
