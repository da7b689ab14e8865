package gemini_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"google.golang.org/genai"

	"gemini-playground/pkg/gemini"
)

func TestChatSession_History(t *testing.T) {
	models := newFakeModels()
	models.replies = []string{
		"That's wonderful! Two dogs must keep you busy.",
		"There are 8 paws in your house.\n",
	}
	client := gemini.NewFromModels(models, "")

	session, err := client.NewChat("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Model() != gemini.DefaultModel {
		t.Errorf("expected model %s, got %s", gemini.DefaultModel, session.Model())
	}
	if len(session.History()) != 0 {
		t.Errorf("new session must start empty")
	}

	ctx := context.Background()
	first, err := session.Send(ctx, "I have 2 dogs in my house.")
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	if first != "That's wonderful! Two dogs must keep you busy." {
		t.Errorf("unexpected first reply %q", first)
	}

	second, err := session.Send(ctx, "How many paws are in my house?")
	if err != nil {
		t.Fatalf("second send: %v", err)
	}
	if second != "There are 8 paws in your house." {
		t.Errorf("unexpected second reply %q", second)
	}

	want := []gemini.Turn{
		{Role: gemini.RoleUser, Text: "I have 2 dogs in my house."},
		{Role: gemini.RoleModel, Text: "That's wonderful! Two dogs must keep you busy."},
		{Role: gemini.RoleUser, Text: "How many paws are in my house?"},
		{Role: gemini.RoleModel, Text: "There are 8 paws in your house.\n"},
	}
	history := session.History()
	if len(history) != len(want) {
		t.Fatalf("expected %d turns, got %d", len(want), len(history))
	}
	for i := range want {
		if history[i] != want[i] {
			t.Errorf("turn %d: expected %+v, got %+v", i, want[i], history[i])
		}
	}

	// second call carries the whole conversation as context
	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}
	if len(models.calls[0].contents) != 1 {
		t.Errorf("first call: expected 1 content, got %d", len(models.calls[0].contents))
	}
	if len(models.calls[1].contents) != 3 {
		t.Fatalf("second call: expected 3 contents, got %d", len(models.calls[1].contents))
	}
	if models.calls[1].contents[1].Role != genai.RoleModel {
		t.Errorf("expected the model reply in context, got role %s", models.calls[1].contents[1].Role)
	}

	// reading history is repeatable and does not alias internal state
	history[0].Text = "mutated"
	if got := session.History()[0].Text; got != "I have 2 dogs in my house." {
		t.Errorf("history aliased internal state: %q", got)
	}
	if session.Len() != 4 {
		t.Errorf("expected Len 4, got %d", session.Len())
	}
}

func TestChatSession_FailureKeepsHistory(t *testing.T) {
	models := newFakeModels()
	models.replies = []string{"hi"}
	client := gemini.NewFromModels(models, "")

	session, err := client.NewChat(gemini.ModelGemini15Flash, &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := session.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("first send: %v", err)
	}

	models.err = errors.New("unavailable")
	_, err = session.Send(context.Background(), "again")

	var remoteErr *gemini.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Op != gemini.OpChat {
		t.Errorf("expected op %s, got %s", gemini.OpChat, remoteErr.Op)
	}
	if n := len(session.History()); n != 2 {
		t.Errorf("failed send must not change history, got %d turns", n)
	}

	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}
	if models.calls[1].model != gemini.ModelGemini15Flash {
		t.Errorf("expected model %s, got %s", gemini.ModelGemini15Flash, models.calls[1].model)
	}
	cfg := models.calls[1].config
	if cfg == nil || cfg.Temperature == nil {
		t.Fatal("expected the session config to be passed through")
	}
	if math.Abs(float64(*cfg.Temperature)-0.5) > 1e-6 {
		t.Errorf("expected temperature 0.5, got %v", *cfg.Temperature)
	}
}

func TestChatSession_Validation(t *testing.T) {
	client := gemini.NewFromModels(newFakeModels(), "")

	if _, err := client.NewChat("gemini-ultra", nil); !errors.Is(err, gemini.ErrUnsupportedModel) {
		t.Errorf("expected ErrUnsupportedModel, got %v", err)
	}

	session, err := client.NewChat("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := session.Send(context.Background(), "  "); !errors.Is(err, gemini.ErrEmptyPrompt) {
		t.Errorf("expected ErrEmptyPrompt, got %v", err)
	}
	if len(session.History()) != 0 {
		t.Errorf("rejected message must not be recorded")
	}
}
