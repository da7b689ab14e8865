package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"gemini-playground/internal/playground"
	"gemini-playground/internal/playground/repository"
)

// InsertRun prepends a run to the session's history, evicting the oldest run
// once MaxStored is reached. Inserting refreshes the session TTL.
func (r *implRepository) InsertRun(ctx context.Context, opt repository.InsertRunOptions) (playground.RunRecord, error) {
	if opt.SessionID == "" {
		return playground.RunRecord{}, playground.ErrMissingSession
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	runs, ok := r.sessions.Get(opt.SessionID)
	if !ok {
		var err error
		runs, err = lru.New[string, playground.RunRecord](r.maxStored)
		if err != nil {
			r.l.Errorf(ctx, "internal.playground.repository.memory.InsertRun: %v", err)
			return playground.RunRecord{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
	}

	run := playground.RunRecord{
		ID:        uuid.NewString(),
		SessionID: opt.SessionID,
		Model:     opt.Model,
		Prompt:    opt.Prompt,
		Response:  opt.Response,
		Streamed:  opt.Streamed,
		CreatedAt: r.now(),
	}
	runs.Add(run.ID, run)
	r.sessions.Add(opt.SessionID, runs)

	return run, nil
}

// ListRecentRuns returns the session's runs newest first.
func (r *implRepository) ListRecentRuns(ctx context.Context, opt repository.ListRecentRunsOptions) ([]playground.RunRecord, error) {
	if opt.SessionID == "" {
		return nil, playground.ErrMissingSession
	}

	runs, ok := r.sessions.Get(opt.SessionID)
	if !ok {
		return []playground.RunRecord{}, nil
	}

	// Keys are ordered oldest to newest.
	keys := runs.Keys()
	slices.Reverse(keys)
	if opt.Limit > 0 && len(keys) > opt.Limit {
		keys = keys[:opt.Limit]
	}

	out := make([]playground.RunRecord, 0, len(keys))
	for _, key := range keys {
		if run, ok := runs.Peek(key); ok {
			out = append(out, run)
		}
	}
	return out, nil
}

// CountRuns returns how many runs are stored for the session.
func (r *implRepository) CountRuns(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, playground.ErrMissingSession
	}
	runs, ok := r.sessions.Get(sessionID)
	if !ok {
		return 0, nil
	}
	return runs.Len(), nil
}
