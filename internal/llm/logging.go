package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/olympiad/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
	log       zerolog.Logger
}

// WithLogging wraps a Provider with event logging. providerName labels the
// events (e.g. "huggingface"); the model comes from the response.
func WithLogging(p Provider, providerName string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: providerName, eventRepo: repo, log: log.Logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = resp.Text
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	ev := l.log.Debug()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev.Str("purpose", purpose).
		Int("item", ItemFrom(ctx)).
		Str("model", data.Model).
		Int64("latency_ms", latencyMs).
		Int("out_tokens", data.OutputTokens).
		Msg("llm request")

	if l.eventRepo != nil {
		// Logging failures never fail the request.
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn().Err(logErr).Msg("failed to record LLM request event")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[params] temperature=%.2f max_tokens=%d\n\n", req.Temperature, req.MaxTokens)

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
