package llm

import (
	"context"
	"errors"
)

// Provider abstracts the generative-AI text completion service.
type Provider interface {
	// Configured reports whether a credential is present. Callers check it
	// before Generate so a missing key never reaches the network.
	Configured() bool
	// Generate sends one prompt and returns the raw text of the reply.
	Generate(ctx context.Context, req Request) (string, error)
}

// Request describes a single completion call.
type Request struct {
	Prompt string
	// Schema is a hint for the provider about the desired output shape. The
	// reply is not guaranteed to conform and must be validated by the caller.
	Schema      *Schema
	MIMEType    string
	Temperature float32
}

// ErrMissingCredential is returned when Generate runs without an API key.
var ErrMissingCredential = errors.New("LLM API key is not configured")
