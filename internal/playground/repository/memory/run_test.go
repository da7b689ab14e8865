package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-playground/internal/playground"
	"gemini-playground/internal/playground/repository"
	"gemini-playground/pkg/log"
)

func newTestRepo(cfg Config) *implRepository {
	return New(log.NewNop(), cfg)
}

func TestInsertRun_NewestFirst(t *testing.T) {
	repo := newTestRepo(Config{})
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := repo.InsertRun(ctx, repository.InsertRunOptions{
			SessionID: "s1",
			Prompt:    fmt.Sprintf("P%d", i),
			Response:  fmt.Sprintf("R%d", i),
		})
		require.NoError(t, err)
	}

	count, err := repo.CountRuns(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	runs, err := repo.ListRecentRuns(ctx, repository.ListRecentRunsOptions{SessionID: "s1", Limit: 5})
	require.NoError(t, err)

	prompts := make([]string, len(runs))
	for i, run := range runs {
		prompts[i] = run.Prompt
	}
	assert.Equal(t, []string{"P7", "P6", "P5", "P4", "P3"}, prompts)

	all, err := repo.ListRecentRuns(ctx, repository.ListRecentRunsOptions{SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, all, 7)
	assert.Equal(t, "P1", all[6].Prompt)
}

func TestInsertRun_EvictsOldest(t *testing.T) {
	repo := newTestRepo(Config{MaxStored: 3})
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.InsertRun(ctx, repository.InsertRunOptions{SessionID: "s1", Prompt: fmt.Sprintf("P%d", i)})
		require.NoError(t, err)
	}

	runs, err := repo.ListRecentRuns(ctx, repository.ListRecentRunsOptions{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "P5", runs[0].Prompt)
	assert.Equal(t, "P3", runs[2].Prompt)
}

func TestInsertRun_AssignsIdentity(t *testing.T) {
	repo := newTestRepo(Config{})
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	run, err := repo.InsertRun(context.Background(), repository.InsertRunOptions{
		SessionID: "s1",
		Model:     "gemini-2.5-flash",
		Prompt:    "hi",
		Streamed:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "s1", run.SessionID)
	assert.Equal(t, fixed, run.CreatedAt)
	assert.True(t, run.Streamed)
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := newTestRepo(Config{})
	ctx := context.Background()

	_, err := repo.InsertRun(ctx, repository.InsertRunOptions{SessionID: "a", Prompt: "for a"})
	require.NoError(t, err)

	runs, err := repo.ListRecentRuns(ctx, repository.ListRecentRunsOptions{SessionID: "b"})
	require.NoError(t, err)
	assert.Empty(t, runs)

	count, err := repo.CountRuns(ctx, "b")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMissingSession(t *testing.T) {
	repo := newTestRepo(Config{})
	ctx := context.Background()

	_, err := repo.InsertRun(ctx, repository.InsertRunOptions{Prompt: "x"})
	assert.ErrorIs(t, err, playground.ErrMissingSession)

	_, err = repo.ListRecentRuns(ctx, repository.ListRecentRunsOptions{})
	assert.ErrorIs(t, err, playground.ErrMissingSession)

	_, err = repo.CountRuns(ctx, "")
	assert.ErrorIs(t, err, playground.ErrMissingSession)
}

func TestInsertRun_Concurrent(t *testing.T) {
	repo := newTestRepo(Config{MaxStored: 100})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.InsertRun(ctx, repository.InsertRunOptions{SessionID: "s1", Prompt: fmt.Sprintf("P%d", i)})
		}(i)
	}
	wg.Wait()

	count, err := repo.CountRuns(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 20, count)
}
