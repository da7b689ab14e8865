package http

import (
	"gemini-playground/internal/chat"
	"gemini-playground/pkg/response"
)

// --- Request DTOs ---

type createSessionReq struct {
	Model             string   `json:"model"`
	SystemInstruction string   `json:"system_instruction"`
	Temperature       *float64 `json:"temperature"      binding:"omitempty,gte=0,lte=1"`
	DisableThinking   bool     `json:"disable_thinking"`
}

func (r createSessionReq) toInput() chat.CreateSessionInput {
	return chat.CreateSessionInput{
		Model:             r.Model,
		SystemInstruction: r.SystemInstruction,
		Temperature:       r.Temperature,
		DisableThinking:   r.DisableThinking,
	}
}

type sendMessageReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text" binding:"required"`
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID        string            `json:"id"`
	Model     string            `json:"model"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newSessionResp(s chat.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		Model:     s.Model,
		CreatedAt: response.DateTime(s.CreatedAt),
	}
}

type messageResp struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func newMessagesResp(messages []chat.Message) []messageResp {
	out := make([]messageResp, len(messages))
	for i, m := range messages {
		out[i] = messageResp{Role: m.Role, Text: m.Text}
	}
	return out
}

type createSessionResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newCreateSessionResp(out chat.CreateSessionOutput) createSessionResp {
	return createSessionResp{Session: newSessionResp(out.Session)}
}

type sendMessageResp struct {
	Reply   string        `json:"reply"`
	History []messageResp `json:"history"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{Reply: out.Reply, History: newMessagesResp(out.History)}
}

type historyResp struct {
	Session sessionResp   `json:"session"`
	History []messageResp `json:"history"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	return historyResp{Session: newSessionResp(out.Session), History: newMessagesResp(out.History)}
}
