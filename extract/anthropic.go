// Package extract turns video transcripts and descriptions into structured
// knowledge-base records by prompting an Anthropic model. Extraction is a
// best-effort enrichment step: every failure degrades to an empty result.
package extract

import (
	"context"
	"encoding/json"
	"fmt"

	httpclient "ytkb/http"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "claude-sonnet-4-20250514"
)

// AnthropicClient is a minimal Messages API client.
type AnthropicClient struct {
	http   *httpclient.Client
	apiKey string

	// BaseURL is the API endpoint. Overridable for tests.
	BaseURL string

	// Model is the model id sent with every request.
	Model string
}

// NewAnthropicClient creates a Messages API client. A nil httpc uses the
// package default client.
func NewAnthropicClient(apiKey string, httpc *httpclient.Client) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if httpc == nil {
		httpc = httpclient.New(nil)
	}
	return &AnthropicClient{
		http:    httpc,
		apiKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   DefaultModel,
	}, nil
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends a single-turn user prompt and returns the model's text
// response.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(messageRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	headers := map[string]string{
		"Content-Type":      "application/json",
		"X-Api-Key":         c.apiKey,
		"Anthropic-Version": apiVersion,
	}

	resp, err := c.http.Post(ctx, c.BaseURL+"/v1/messages", body, headers)
	if err != nil {
		return "", fmt.Errorf("messages request: %w", err)
	}

	var parsed messageResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}
