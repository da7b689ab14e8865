package gemini

import (
	"context"
	"slices"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// ChatSession keeps a multi-turn history and sends it as context on every call.
// History is append-only. Send serializes on the session.
type ChatSession struct {
	mu      sync.Mutex
	models  Models
	model   string
	config  *genai.GenerateContentConfig
	history []*genai.Content
}

// Model returns the model the session talks to.
func (s *ChatSession) Model() string {
	return s.model
}

// Send appends the user message and the model reply to the history and returns
// the trimmed reply. On failure the history is left untouched.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userTurn := genai.NewContentFromText(text, genai.RoleUser)
	contents := append(slices.Clone(s.history), userTurn)

	resp, err := s.models.GenerateContent(ctx, s.model, contents, s.config)
	if err != nil {
		return "", &RemoteError{Op: OpChat, Err: err}
	}

	reply := responseText(resp)
	s.history = append(s.history, userTurn, genai.NewContentFromText(reply, genai.RoleModel))

	return strings.TrimSpace(reply), nil
}

// History returns a copy of every turn sent through the session, oldest first.
func (s *ChatSession) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]Turn, 0, len(s.history))
	for _, content := range s.history {
		turns = append(turns, Turn{
			Role: content.Role,
			Text: contentText(content),
		})
	}
	return turns
}

// Len returns the number of turns recorded so far.
func (s *ChatSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
