package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tomekjam/ai-digest/internal/config"
)

const maxDigestTokens = 6144

type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
	topics config.Topics
}

func NewAnthropicClient(apiKey string, topics config.Topics) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client: &client,
		model:  anthropic.ModelClaudeSonnet4_20250514,
		topics: topics,
	}
}

// FetchDigest asks the model to search the web for current AI news and
// return candidate stories in the sentinel-delimited digest format. The
// model may run its search tool several times before answering; only the
// text blocks of the final response are kept, concatenated in order.
func (c *AnthropicClient) FetchDigest(ctx context.Context, recentTitles []string) (string, error) {
	prompt := BuildDigestPrompt(time.Now(), recentTitles, c.topics)

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxDigestTokens,
		Tools: []anthropic.ToolUnionParam{
			{OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{}},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var parts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}

	return strings.Join(parts, "\n"), nil
}
