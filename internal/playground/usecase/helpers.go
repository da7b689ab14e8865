package usecase

import (
	"fmt"

	"gemini-playground/internal/playground"
)

const (
	titlePromptRunes      = 60
	noResponsePlaceholder = "_No response returned._"
)

func toHistoryEntry(index int, run playground.RunRecord) playground.HistoryEntry {
	response := run.Response
	if response == "" {
		response = noResponsePlaceholder
	}
	return playground.HistoryEntry{
		Index:     index,
		Title:     runTitle(index, run.Prompt),
		Prompt:    run.Prompt,
		Response:  response,
		Model:     run.Model,
		Streamed:  run.Streamed,
		CreatedAt: run.CreatedAt,
	}
}

// runTitle is "Run #i: " followed by the first 60 runes of the prompt and "...".
func runTitle(index int, prompt string) string {
	return fmt.Sprintf("Run #%d: %s...", index, truncateRunes(prompt, titlePromptRunes))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
