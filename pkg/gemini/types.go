package gemini

import (
	"net/http"

	"google.golang.org/genai"
)

// Config configures the client provisioner.
type Config struct {
	APIKey       string
	DefaultModel string

	// Optional transport overrides; zero values keep the SDK defaults.
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks the config and fills in the default model.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.DefaultModel == "" {
		c.DefaultModel = DefaultModel
	}
	if !IsSupportedModel(c.DefaultModel) {
		return ErrUnsupportedModel
	}
	return nil
}

// Request is a fully built generation request. Build it with RequestBuilder.
type Request struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// Validate checks the structural invariants every request must hold.
func (r Request) Validate() error {
	if r.Model == "" {
		return ErrUnsupportedModel
	}
	if len(r.Contents) == 0 {
		return ErrEmptyContents
	}
	last := r.Contents[len(r.Contents)-1]
	if last == nil || len(last.Parts) == 0 || last.Parts[len(last.Parts)-1] == nil || last.Parts[len(last.Parts)-1].Text == "" {
		return ErrMissingTextPart
	}
	return nil
}

// RenderFunc receives the full accumulated text after every non-empty fragment.
type RenderFunc func(accumulated string)

// Turn is one entry of a chat history.
type Turn struct {
	Role string
	Text string
}
