package repository

import (
	"context"

	"gemini-playground/internal/playground"
)

// Repository is the composed interface for the playground data store.
type Repository interface {
	RunRepository
}

// RunRepository stores run history per browser session, newest first.
type RunRepository interface {
	InsertRun(ctx context.Context, opt InsertRunOptions) (playground.RunRecord, error)
	ListRecentRuns(ctx context.Context, opt ListRecentRunsOptions) ([]playground.RunRecord, error)
	CountRuns(ctx context.Context, sessionID string) (int, error)
}
