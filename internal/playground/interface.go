package playground

import (
	"context"

	"gemini-playground/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate performs one blocking call and records it on success.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	// GenerateStream renders every non-empty fragment and records the run on success.
	GenerateStream(ctx context.Context, input GenerateInput, render gemini.RenderFunc) (GenerateOutput, error)
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	Models(ctx context.Context) ModelsOutput
}
