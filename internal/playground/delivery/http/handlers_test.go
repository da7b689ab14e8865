package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-playground/internal/middleware"
	"gemini-playground/internal/playground"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockUseCase is a hand-rolled playground.UseCase.
type mockUseCase struct {
	fragments []string
	output    playground.GenerateOutput
	history   playground.HistoryOutput
	err       error

	lastInput    playground.GenerateInput
	historyInput playground.HistoryInput
	calls        int
}

func (m *mockUseCase) Generate(ctx context.Context, input playground.GenerateInput) (playground.GenerateOutput, error) {
	m.calls++
	m.lastInput = input
	if m.err != nil {
		return playground.GenerateOutput{}, m.err
	}
	return m.output, nil
}

func (m *mockUseCase) GenerateStream(ctx context.Context, input playground.GenerateInput, render gemini.RenderFunc) (playground.GenerateOutput, error) {
	m.calls++
	m.lastInput = input
	acc := ""
	for _, f := range m.fragments {
		acc += f
		render(acc)
	}
	if m.err != nil {
		return playground.GenerateOutput{}, m.err
	}
	return m.output, nil
}

func (m *mockUseCase) History(ctx context.Context, input playground.HistoryInput) (playground.HistoryOutput, error) {
	m.historyInput = input
	return m.history, m.err
}

func (m *mockUseCase) Models(ctx context.Context) playground.ModelsOutput {
	return playground.ModelsOutput{Models: gemini.SupportedModels, Default: gemini.DefaultModel}
}

func newTestRouter(uc playground.UseCase) *gin.Engine {
	r := gin.New()
	h := New(log.NewNop(), uc, time.Hour)
	mw := middleware.New(log.NewNop(), middleware.Config{})
	RegisterPage(r, h)
	RegisterRoutes(r.Group("/api/v1/playground"), h, mw)
	return r
}

type formFile struct {
	name string
	data []byte
}

func multipartRequest(t *testing.T, fields map[string]string, file *formFile) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		fw, err := w.CreateFormFile("image", file.name)
		require.NoError(t, err)
		_, err = fw.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/playground/generate", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleOutput() playground.GenerateOutput {
	return playground.GenerateOutput{Run: playground.RunRecord{
		ID:        "run-1",
		Model:     gemini.DefaultModel,
		Prompt:    "greet",
		Response:  "Hello world",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
}

func TestPage(t *testing.T) {
	rec := serve(newTestRouter(&mockUseCase{}), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Gemini Playground")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), sessionCookie+"=")
}

func TestModels(t *testing.T) {
	rec := serve(newTestRouter(&mockUseCase{}), httptest.NewRequest(http.MethodGet, "/api/v1/playground/models", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, gemini.DefaultModel, data["default"])
	assert.Len(t, data["models"], len(gemini.SupportedModels))
}

func TestGenerate_Blocking(t *testing.T) {
	uc := &mockUseCase{output: sampleOutput()}
	req := multipartRequest(t, map[string]string{
		"prompt":             "greet",
		"model":              gemini.ModelGemini15Flash,
		"system_instruction": "be brief",
		"disable_thinking":   "true",
	}, nil)

	rec := serve(newTestRouter(uc), req)

	require.Equal(t, http.StatusOK, rec.Code)
	run := decodeBody(t, rec)["data"].(map[string]any)["run"].(map[string]any)
	assert.Equal(t, "Hello world", run["response"])
	assert.Equal(t, "2025-01-02 03:04:05", run["created_at"])

	assert.Equal(t, "greet", uc.lastInput.Prompt)
	assert.Equal(t, gemini.ModelGemini15Flash, uc.lastInput.Model)
	assert.Equal(t, "be brief", uc.lastInput.SystemInstruction)
	assert.True(t, uc.lastInput.DisableThinking)
	assert.Equal(t, gemini.DefaultTemperature, uc.lastInput.Temperature)
	assert.NotEmpty(t, uc.lastInput.SessionID)
	assert.Nil(t, uc.lastInput.Image)
}

func TestGenerate_ReusesSessionCookie(t *testing.T) {
	uc := &mockUseCase{output: sampleOutput()}
	req := multipartRequest(t, map[string]string{"prompt": "greet"}, nil)
	sessionID := "9b2d8a38-7c3e-4b8f-9d63-0f6f6b7c2a11"
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionID})

	rec := serve(newTestRouter(uc), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionID, uc.lastInput.SessionID)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestGenerate_WithImage(t *testing.T) {
	uc := &mockUseCase{output: sampleOutput()}
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D}
	req := multipartRequest(t, map[string]string{"prompt": "describe", "temperature": "0.25"}, &formFile{name: "cat.png", data: png})

	rec := serve(newTestRouter(uc), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, png, uc.lastInput.Image)
	assert.Equal(t, 0.25, uc.lastInput.Temperature)
}

func TestGenerate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"missing prompt", map[string]string{"model": gemini.DefaultModel}},
		{"blank prompt", map[string]string{"prompt": "   "}},
		{"temperature too high", map[string]string{"prompt": "hi", "temperature": "1.5"}},
		{"temperature negative", map[string]string{"prompt": "hi", "temperature": "-0.05"}},
		{"temperature not a number", map[string]string{"prompt": "hi", "temperature": "warm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serve(newTestRouter(uc), multipartRequest(t, tt.fields, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestGenerate_MapsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unsupported model", gemini.ErrUnsupportedModel, http.StatusBadRequest},
		{"unsupported image", gemini.ErrUnsupportedImage, http.StatusBadRequest},
		{"missing session from store", fmt.Errorf("insert run: %w", playground.ErrMissingSession), http.StatusBadRequest},
		{"remote failure", &gemini.RemoteError{Op: gemini.OpGenerate, Err: errors.New("quota")}, http.StatusBadGateway},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			rec := serve(newTestRouter(uc), multipartRequest(t, map[string]string{"prompt": "hi"}, nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestGenerate_Stream(t *testing.T) {
	uc := &mockUseCase{fragments: []string{"Hello", " world"}, output: sampleOutput()}
	rec := serve(newTestRouter(uc), multipartRequest(t, map[string]string{"prompt": "greet", "stream": "true"}, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	first := strings.Index(body, `{"text":"Hello"}`)
	second := strings.Index(body, `{"text":"Hello world"}`)
	done := strings.Index(body, "event:done")
	require.True(t, first >= 0 && second > first && done > second, body)
	assert.Contains(t, body, `"response":"Hello world"`)
}

func TestGenerate_StreamInterrupted(t *testing.T) {
	uc := &mockUseCase{
		fragments: []string{"Hel"},
		err:       &gemini.RemoteError{Op: gemini.OpStream, Err: errors.New("reset"), Incomplete: true, Partial: "Hel"},
	}
	rec := serve(newTestRouter(uc), multipartRequest(t, map[string]string{"prompt": "greet", "stream": "true"}, nil))

	body := rec.Body.String()
	assert.Contains(t, body, "event:error")
	assert.Contains(t, body, `"incomplete":true`)
	assert.NotContains(t, body, "event:done")
}

func TestGenerate_StreamFailsBeforeOutput(t *testing.T) {
	uc := &mockUseCase{err: &gemini.RemoteError{Op: gemini.OpStream, Err: errors.New("denied")}}
	rec := serve(newTestRouter(uc), multipartRequest(t, map[string]string{"prompt": "greet", "stream": "true"}, nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestHistory(t *testing.T) {
	uc := &mockUseCase{history: playground.HistoryOutput{
		Entries: []playground.HistoryEntry{{Index: 1, Title: "Run #1: P7...", Prompt: "P7", Response: "R7"}},
		Total:   7,
	}}
	sessionID := "9b2d8a38-7c3e-4b8f-9d63-0f6f6b7c2a11"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/playground/history", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionID})

	rec := serve(newTestRouter(uc), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionID, uc.historyInput.SessionID)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(7), data["total"])
	entries := data["entries"].([]any)
	require.Len(t, entries, 1)
	assert.Equal(t, "Run #1: P7...", entries[0].(map[string]any)["title"])
}

func TestHistory_NoSession(t *testing.T) {
	uc := &mockUseCase{}
	rec := serve(newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/api/v1/playground/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, uc.historyInput.SessionID)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Empty(t, data["entries"])
}
