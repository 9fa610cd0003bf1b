package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/logger"
)

// Analyst generates narrative market analysis from a rendered prompt.
// It is the only component that talks to the text-generation service.
type Analyst interface {
	Analyze(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// AnthropicAnalyst implements Analyst over the Anthropic Messages API.
type AnthropicAnalyst struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    *logger.Logger
}

// NewAnthropicAnalyst creates an analyst from config.
func NewAnthropicAnalyst(cfg *config.Config, log *logger.Logger) *AnthropicAnalyst {
	client := anthropic.NewClient(option.WithAPIKey(cfg.Anthropic.APIKey))
	return &AnthropicAnalyst{
		client:    &client,
		model:     anthropic.Model(cfg.Anthropic.Model),
		maxTokens: int64(cfg.Anthropic.MaxTokens),
		logger:    log,
	}
}

// Analyze sends the prompt and returns the generated analysis text.
func (a *AnthropicAnalyst) Analyze(ctx context.Context, systemPrompt, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		sb.WriteString(block.Text)
	}

	analysis := strings.TrimSpace(sb.String())

	a.logger.WithFields(map[string]interface{}{
		"model":        string(a.model),
		"prompt_chars": len(prompt),
		"output_chars": len(analysis),
	}).Info("Analysis generated")

	return analysis, nil
}
