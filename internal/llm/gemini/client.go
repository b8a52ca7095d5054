package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"syllabus-analyzer/internal/llm"
)

// Client implements llm.Provider using the Gemini API.
//
// The underlying genai client is created on first use so that a missing key
// never fails at construction time.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
	baseURL string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewClient constructs a Gemini provider.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Generate requests JSON output constrained by req.Schema.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	if !c.Configured() {
		return "", llm.ErrMissingCredential
	}
	if strings.TrimSpace(c.model) == "" {
		return "", errors.New("LLM_MODEL is required for Gemini")
	}
	client, err := c.genai(ctx)
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MIMEType != "" {
		cfg.ResponseMIMEType = req.MIMEType
	}
	if req.Schema != nil {
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("gemini response missing candidates")
	}
	return resp.Text(), nil
}

func (c *Client) genai(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:     c.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: c.timeout},
		}
		if c.baseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
		}
		c.client, c.initErr = genai.NewClient(ctx, cc)
		if c.initErr != nil {
			c.initErr = fmt.Errorf("failed to create GenAI client: %w", c.initErr)
		}
	})
	return c.client, c.initErr
}

func toGenaiSchema(s *llm.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toGenaiType(s.Type),
		Description: s.Description,
		Items:       toGenaiSchema(s.Items),
		Required:    append([]string(nil), s.Required...),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	if len(s.Ordering) > 0 {
		out.PropertyOrdering = append([]string(nil), s.Ordering...)
	}
	return out
}

func toGenaiType(t string) genai.Type {
	switch t {
	case llm.TypeArray:
		return genai.TypeArray
	case llm.TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

var _ llm.Provider = (*Client)(nil)
