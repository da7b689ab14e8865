package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

type geminiImpl struct {
	models       Models
	defaultModel string
}

func newGeminiImpl(models Models, defaultModel string) *geminiImpl {
	return &geminiImpl{
		models:       models,
		defaultModel: defaultModel,
	}
}

func (g *geminiImpl) DefaultModel() string {
	return g.defaultModel
}

func (g *geminiImpl) Generate(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	resp, err := g.models.GenerateContent(ctx, req.Model, req.Contents, req.Config)
	if err != nil {
		return "", &RemoteError{Op: OpGenerate, Err: err}
	}

	return strings.TrimSpace(responseText(resp)), nil
}

func (g *geminiImpl) GenerateStream(ctx context.Context, req Request, render RenderFunc) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var acc strings.Builder
	for resp, err := range g.models.GenerateContentStream(ctx, req.Model, req.Contents, req.Config) {
		if err != nil {
			return "", &RemoteError{
				Op:         OpStream,
				Err:        err,
				Incomplete: acc.Len() > 0,
				Partial:    acc.String(),
			}
		}

		fragment := responseText(resp)
		if fragment == "" {
			continue
		}

		acc.WriteString(fragment)
		if render != nil {
			render(acc.String())
		}
	}

	return strings.TrimSpace(acc.String()), nil
}

func (g *geminiImpl) NewChat(model string, config *genai.GenerateContentConfig) (*ChatSession, error) {
	if model == "" {
		model = g.defaultModel
	}
	if !IsSupportedModel(model) {
		return nil, ErrUnsupportedModel
	}
	return &ChatSession{
		models: g.models,
		model:  model,
		config: config,
	}, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}

func contentText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
