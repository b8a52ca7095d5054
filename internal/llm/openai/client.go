package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"syllabus-analyzer/internal/llm"
)

// The JSON-object response format cannot return a top-level array, so the
// schema travels in the system message and no ResponseFormat is set; the
// reply is validated by the caller like any other provider's.
const systemPromptJSON = "You are an educational assessment engine. Respond with JSON only, no markdown. Your whole reply must be a single JSON document that validates against this JSON Schema:\n%s"

// Client implements llm.Provider using OpenAI Chat Completions.
type Client struct {
	apiKey string
	model  string
	api    *goopenai.Client
}

// NewClient constructs a new OpenAI client. An empty apiKey yields a client
// that reports Configured() == false.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return newClient(apiKey, model, timeout, "")
}

func newClient(apiKey, model string, timeout time.Duration, baseURL string) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
		api:    goopenai.NewClientWithConfig(cfg),
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Generate returns the raw assistant message for the prompt.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	if !c.Configured() {
		return "", llm.ErrMissingCredential
	}
	if strings.TrimSpace(c.model) == "" {
		return "", fmt.Errorf("LLM_MODEL is required for OpenAI")
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if req.Schema != nil {
		schema, err := json.MarshalIndent(req.Schema.JSONSchema(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("openai schema: %w", err)
		}
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: fmt.Sprintf(systemPromptJSON, string(schema)),
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ llm.Provider = (*Client)(nil)
