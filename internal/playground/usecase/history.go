package usecase

import (
	"context"

	"gemini-playground/internal/playground"
	"gemini-playground/internal/playground/repository"
	"gemini-playground/pkg/gemini"
)

// History returns the newest runs of a session as display entries.
func (uc *implUseCase) History(ctx context.Context, input playground.HistoryInput) (playground.HistoryOutput, error) {
	if input.SessionID == "" {
		return playground.HistoryOutput{}, playground.ErrMissingSession
	}

	runs, err := uc.repo.ListRecentRuns(ctx, repository.ListRecentRunsOptions{
		SessionID: input.SessionID,
		Limit:     uc.displayLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.playground.usecase.History ListRecentRuns: %v", err)
		return playground.HistoryOutput{}, err
	}

	total, err := uc.repo.CountRuns(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.playground.usecase.History CountRuns: %v", err)
		return playground.HistoryOutput{}, err
	}

	entries := make([]playground.HistoryEntry, len(runs))
	for i, run := range runs {
		entries[i] = toHistoryEntry(i+1, run)
	}

	return playground.HistoryOutput{Entries: entries, Total: total}, nil
}

// Models lists the selectable models, default first.
func (uc *implUseCase) Models(ctx context.Context) playground.ModelsOutput {
	models := make([]string, len(gemini.SupportedModels))
	copy(models, gemini.SupportedModels)
	return playground.ModelsOutput{
		Models:  models,
		Default: uc.gemini.DefaultModel(),
	}
}
