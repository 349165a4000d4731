// Package llm is the classification client. It sends free text to the
// Anthropic Messages API and turns the reply into a domain.Classification.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sthacker-ai/NexusLog/internal/config"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const (
	providerName = "anthropic"

	FeatureClassify   = "classify"
	FeatureIdeaPrompt = "idea_prompt"
)

type usageRecorder interface {
	Record(ctx context.Context, rec domain.UsageRecord) error
}

// Client talks to the provider. A Client built without an API key fails
// every call with ErrDisabled so that callers take their fallback path.
type Client struct {
	api   anthropic.Client
	cfg   config.LLMConfig
	usage usageRecorder
	log   *slog.Logger
}

// NewClient creates a Client. usage may be nil.
func NewClient(cfg config.LLMConfig, usage usageRecorder, log *slog.Logger, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:   anthropic.NewClient(append(base, opts...)...),
		cfg:   cfg,
		usage: usage,
		log:   log.With("adapter", "llm"),
	}
}

// Enabled reports whether calls will reach the provider.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled()
}

// Classify asks the model to judge text. categories are the known top-level
// names offered for reuse. Every failure is a *ClassificationError.
func (c *Client) Classify(ctx context.Context, text string, categories []string) (domain.Classification, error) {
	if !c.Enabled() {
		return domain.Classification{}, callError(ErrDisabled)
	}

	reply, err := c.complete(ctx, FeatureClassify, buildClassifyPrompt(text, categories))
	if err != nil {
		return domain.Classification{}, callError(err)
	}

	return ParseClassification(reply)
}

// GenerateIdeaPrompt asks the model for a content-creation brief for idea.
// Callers fall back to FallbackIdeaPrompt on error.
func (c *Client) GenerateIdeaPrompt(ctx context.Context, idea string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	reply, err := c.complete(ctx, FeatureIdeaPrompt, buildIdeaPrompt(idea))
	if err != nil {
		return "", fmt.Errorf("generate idea prompt: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("generate idea prompt: empty response")
	}

	return reply, nil
}

// complete sends one user message and returns the concatenated text blocks
// of the reply. Usage is recorded for every reply the provider returns.
func (c *Client) complete(ctx context.Context, feature, prompt string) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: c.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		c.log.WarnContext(ctx, "llm call failed",
			slog.String("feature", feature),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%s api call: %w", feature, err)
	}

	c.recordUsage(ctx, feature, msg.Usage.InputTokens, msg.Usage.OutputTokens)

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%s: empty response", feature)
	}

	return sb.String(), nil
}

func (c *Client) recordUsage(ctx context.Context, feature string, input, output int64) {
	if c.usage == nil {
		return
	}

	rec := domain.UsageRecord{
		Provider:     providerName,
		Model:        c.cfg.Model,
		Feature:      feature,
		InputTokens:  input,
		OutputTokens: output,
		CostUSD:      c.Cost(input, output),
	}

	// The request context may already be near its deadline.
	if err := c.usage.Record(context.WithoutCancel(ctx), rec); err != nil {
		c.log.ErrorContext(ctx, "record llm usage",
			slog.String("feature", feature),
			slog.String("error", err.Error()),
		)
	}
}

// Cost returns the price of a call in USD at the configured per-token rates.
func (c *Client) Cost(inputTokens, outputTokens int64) float64 {
	return float64(inputTokens)*c.cfg.InputCostPerToken + float64(outputTokens)*c.cfg.OutputCostPerToken
}
