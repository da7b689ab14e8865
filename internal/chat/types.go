package chat

import "time"

// Session is a chat conversation held in memory.
type Session struct {
	ID        string
	Model     string
	CreatedAt time.Time
}

// Message is one turn of a session's history.
type Message struct {
	Role string
	Text string
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	Model             string
	SystemInstruction string
	// Temperature is sent only when set.
	Temperature     *float64
	DisableThinking bool
}

type SendMessageInput struct {
	SessionID string
	Text      string
}

// --- UseCase Outputs ---

type CreateSessionOutput struct {
	Session Session
}

type SendMessageOutput struct {
	Reply   string
	History []Message
}

type HistoryOutput struct {
	Session Session
	History []Message
}
