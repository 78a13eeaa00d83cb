package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type geminiGenerator struct {
	cfg    config.GeminiConfig
	logger logger.Logger

	mu      sync.Mutex
	current int
}

// NewGemini creates a Generator backed by the Gemini API, rotating through the
// configured API keys on quota errors and retrying transient failures with
// exponential backoff.
func NewGemini(cfg config.GeminiConfig, log logger.Logger) (Generator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("gemini: no API keys configured")
	}
	return &geminiGenerator{cfg: cfg, logger: log}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string, maxChars int) (string, error) {
	full := fmt.Sprintf("%s\n\nKeep the response under %d characters of plain text.", prompt, maxChars)

	op := func() (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutSec)*time.Second)
		defer cancel()

		text, err := g.callOnce(callCtx, full)
		if err == nil {
			return text, nil
		}
		if isQuotaError(err) {
			g.rotateKey(ctx)
			return "", err
		}
		if callCtx.Err() != nil {
			// Timeout: retryable with the same key.
			return "", err
		}
		return "", backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(g.cfg.MaxRetries)),
		ctx,
	)

	text, err := backoff.RetryWithData(op, policy)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (g *geminiGenerator) callOnce(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.currentKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}

func (g *geminiGenerator) currentKey() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg.APIKeys[g.current]
}

func (g *geminiGenerator) rotateKey(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = (g.current + 1) % len(g.cfg.APIKeys)
	g.logger.Warn(ctx, "Gemini key rate limited, rotating to key %d", g.current+1)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
