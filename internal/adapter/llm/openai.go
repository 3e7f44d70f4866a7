package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client generates answers through an OpenAI-compatible chat completion
// endpoint. A client built without an API key reports itself unavailable
// instead of failing construction, so the rest of the pipeline can degrade
// gracefully.
type Client struct {
	model string
	llm   llms.Model
}

func NewClient(baseURL, apiKey, model string) (*Client, error) {
	c := &Client{model: model}
	if apiKey == "" {
		return c, nil
	}

	opts := []openai.Option{
		openai.WithToken(strings.TrimPrefix(apiKey, "Bearer ")),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	c.llm = llm
	return c, nil
}

func (c *Client) IsAvailable() bool {
	return c.llm != nil
}

func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.llm == nil {
		return "", fmt.Errorf("generation backend is not configured")
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return out, nil
}

func (c *Client) ModelName() string {
	return c.model
}
