package searcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 2000
)

// ClaudeSearcher implements Searcher using the Anthropic Messages API with the
// server-side web search tool enabled.
type ClaudeSearcher struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewClaudeSearcher creates a searcher. Empty model and non-positive maxTokens
// fall back to defaults.
func NewClaudeSearcher(apiKey, model string, maxTokens int) *ClaudeSearcher {
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &ClaudeSearcher{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

func (c *ClaudeSearcher) Name() string { return "claude" }

// Search sends the prompt and concatenates all text blocks of the response in
// the order returned. A response with no text content is not an error.
func (c *ClaudeSearcher) Search(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Tools: []anthropic.ToolUnionParam{
			{OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{}},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude API call: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		log.Println("[ERROR] no text content in API response")
		return "", nil
	}

	log.Printf("[INFO] claude search completed (%d chars, %v)", b.Len(), time.Since(start).Round(time.Millisecond))
	return b.String(), nil
}

// IsRetryable classifies a search failure as transient. Transport errors and
// server-side statuses (429, 5xx and the 529 overloaded status) are retryable;
// client errors are not.
func IsRetryable(err error) bool {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == 429 || apierr.StatusCode >= 500
	}
	// Not an API error: connection-level failure.
	return true
}
