package usecase

import (
	"context"
	"testing"

	"google.golang.org/genai"

	"gemini-playground/internal/playground/repository/memory"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
	"gemini-playground/pkg/metrics"
)

// mockGemini is a hand-rolled gemini.IGemini.
type mockGemini struct {
	text      string
	fragments []string
	err       error

	requests []gemini.Request
}

func (m *mockGemini) Generate(ctx context.Context, req gemini.Request) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockGemini) GenerateStream(ctx context.Context, req gemini.Request, render gemini.RenderFunc) (string, error) {
	m.requests = append(m.requests, req)
	acc := ""
	for _, f := range m.fragments {
		if f == "" {
			continue
		}
		acc += f
		render(acc)
	}
	if m.err != nil {
		return "", m.err
	}
	return acc, nil
}

func (m *mockGemini) NewChat(model string, config *genai.GenerateContentConfig) (*gemini.ChatSession, error) {
	return nil, nil
}

func (m *mockGemini) DefaultModel() string {
	return gemini.DefaultModel
}

func newTestUseCase(t *testing.T, g *mockGemini) *implUseCase {
	t.Helper()
	repo := memory.New(log.NewNop(), memory.Config{})
	return New(log.NewNop(), g, repo, metrics.New(), 0)
}
