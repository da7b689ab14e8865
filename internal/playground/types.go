package playground

import "time"

// --- Domain Model ---

// RunRecord is one successful generation kept in a browser session's history.
type RunRecord struct {
	ID        string
	SessionID string
	Model     string
	Prompt    string
	Response  string
	Streamed  bool
	CreatedAt time.Time
}

// HistoryEntry is a RunRecord as shown in the "Recent runs" list.
type HistoryEntry struct {
	Index     int
	Title     string
	Prompt    string
	Response  string
	Model     string
	Streamed  bool
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type GenerateInput struct {
	SessionID         string
	Model             string
	Prompt            string
	SystemInstruction string
	Temperature       float64
	DisableThinking   bool
	Image             []byte
}

type HistoryInput struct {
	SessionID string
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Run RunRecord
}

type HistoryOutput struct {
	Entries []HistoryEntry
	Total   int
}

type ModelsOutput struct {
	Models  []string
	Default string
}
