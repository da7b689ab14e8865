package gemini

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"
)

// Models is the slice of the genai Models service this package calls.
// *genai.Models satisfies it.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

var _ Models = (*genai.Models)(nil)

// IGemini is the generation client. It is read-only after construction and
// safe for concurrent use.
type IGemini interface {
	// Generate performs a blocking call and returns the trimmed response text.
	Generate(ctx context.Context, req Request) (string, error)

	// GenerateStream consumes the fragment sequence, calling render after every
	// non-empty fragment, and returns the trimmed accumulated text.
	GenerateStream(ctx context.Context, req Request, render RenderFunc) (string, error)

	// NewChat starts a chat session with an empty history.
	NewChat(model string, config *genai.GenerateContentConfig) (*ChatSession, error)

	// DefaultModel returns the model used when none is given.
	DefaultModel() string
}

// New builds the genai client for the Gemini API backend. It fails with
// ErrMissingAPIKey before touching the SDK when no key is configured.
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create genai client: %w", err)
	}

	return newGeminiImpl(client.Models, cfg.DefaultModel), nil
}

// NewFromModels wraps an existing Models implementation.
func NewFromModels(models Models, defaultModel string) IGemini {
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	return newGeminiImpl(models, defaultModel)
}
