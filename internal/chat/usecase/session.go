package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gemini-playground/internal/chat"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/metrics"
)

// CreateSession starts a session with an empty history.
func (uc *implUseCase) CreateSession(ctx context.Context, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	builder := gemini.NewRequestBuilder(input.Model).
		SystemInstruction(input.SystemInstruction).
		DisableThinking(input.DisableThinking)
	if input.Temperature != nil {
		builder.Temperature(*input.Temperature)
	}

	model, config, err := builder.BuildChat()
	if err != nil {
		return chat.CreateSessionOutput{}, err
	}

	cs, err := uc.gemini.NewChat(model, config)
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.CreateSession NewChat: %v", err)
		return chat.CreateSessionOutput{}, err
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		Model:     cs.Model(),
		CreatedAt: uc.now(),
	}
	uc.sessions.Add(session.ID, &sessionEntry{session: session, chat: cs})

	uc.l.Infof(ctx, "internal.chat.usecase.CreateSession: session=%s model=%s", session.ID, session.Model)
	return chat.CreateSessionOutput{Session: session}, nil
}

// SendMessage sends text with the session history as context.
// A failed send leaves the history unchanged.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	entry, ok := uc.sessions.Get(input.SessionID)
	if !ok {
		return chat.SendMessageOutput{}, chat.ErrSessionNotFound
	}

	start := uc.now()
	reply, err := entry.chat.Send(ctx, input.Text)
	if err != nil {
		uc.metrics.ObserveCall(entry.session.Model, metrics.ModeChat, metrics.StatusError, uc.now().Sub(start))
		uc.l.Errorf(ctx, "internal.chat.usecase.SendMessage: %v", err)
		return chat.SendMessageOutput{}, err
	}
	uc.metrics.ObserveCall(entry.session.Model, metrics.ModeChat, metrics.StatusOK, uc.now().Sub(start))

	return chat.SendMessageOutput{
		Reply:   reply,
		History: toMessages(entry.chat.History()),
	}, nil
}

// History returns the session's turns, oldest first.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	entry, ok := uc.sessions.Get(sessionID)
	if !ok {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}
	return chat.HistoryOutput{
		Session: entry.session,
		History: toMessages(entry.chat.History()),
	}, nil
}

func toMessages(turns []gemini.Turn) []chat.Message {
	messages := make([]chat.Message, len(turns))
	for i, t := range turns {
		messages[i] = chat.Message{Role: t.Role, Text: t.Text}
	}
	return messages
}
