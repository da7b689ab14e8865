package http

import (
	"mime/multipart"

	"gemini-playground/internal/playground"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/response"
)

// --- Request DTOs ---

type generateReq struct {
	Model             string                `form:"model"`
	Prompt            string                `form:"prompt"             binding:"required"`
	SystemInstruction string                `form:"system_instruction"`
	Temperature       *float64              `form:"temperature"        binding:"omitempty,gte=0,lte=1"`
	DisableThinking   bool                  `form:"disable_thinking"`
	Stream            bool                  `form:"stream"`
	Image             *multipart.FileHeader `form:"image"              swaggerignore:"true"`

	image []byte
}

func (r generateReq) toInput(sessionID string) playground.GenerateInput {
	temperature := gemini.DefaultTemperature
	if r.Temperature != nil {
		temperature = *r.Temperature
	}
	return playground.GenerateInput{
		SessionID:         sessionID,
		Model:             r.Model,
		Prompt:            r.Prompt,
		SystemInstruction: r.SystemInstruction,
		Temperature:       temperature,
		DisableThinking:   r.DisableThinking,
		Image:             r.image,
	}
}

// --- Response DTOs ---

type runResp struct {
	ID        string            `json:"id"`
	Model     string            `json:"model"`
	Prompt    string            `json:"prompt"`
	Response  string            `json:"response"`
	Streamed  bool              `json:"streamed"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newRunResp(run playground.RunRecord) runResp {
	return runResp{
		ID:        run.ID,
		Model:     run.Model,
		Prompt:    run.Prompt,
		Response:  run.Response,
		Streamed:  run.Streamed,
		CreatedAt: response.DateTime(run.CreatedAt),
	}
}

type generateResp struct {
	Run runResp `json:"run"`
}

func (h *handler) newGenerateResp(out playground.GenerateOutput) generateResp {
	return generateResp{Run: newRunResp(out.Run)}
}

type historyEntryResp struct {
	Index     int               `json:"index"`
	Title     string            `json:"title"`
	Prompt    string            `json:"prompt"`
	Response  string            `json:"response"`
	Model     string            `json:"model"`
	Streamed  bool              `json:"streamed"`
	CreatedAt response.DateTime `json:"created_at"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Total   int                `json:"total"`
}

func (h *handler) newHistoryResp(out playground.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = historyEntryResp{
			Index:     e.Index,
			Title:     e.Title,
			Prompt:    e.Prompt,
			Response:  e.Response,
			Model:     e.Model,
			Streamed:  e.Streamed,
			CreatedAt: response.DateTime(e.CreatedAt),
		}
	}
	return historyResp{Entries: entries, Total: out.Total}
}

type modelsResp struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

func (h *handler) newModelsResp(out playground.ModelsOutput) modelsResp {
	return modelsResp{Models: out.Models, Default: out.Default}
}

// --- Stream events ---

type chunkEvent struct {
	Text string `json:"text"`
}

type streamErrorEvent struct {
	Message    string `json:"message"`
	Incomplete bool   `json:"incomplete"`
	Partial    string `json:"partial,omitempty"`
}
