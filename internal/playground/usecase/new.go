package usecase

import (
	"time"

	"gemini-playground/internal/playground"
	"gemini-playground/internal/playground/repository"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
	"gemini-playground/pkg/metrics"
)

const defaultDisplayLimit = 5

// implUseCase is the private implementation of playground.UseCase.
type implUseCase struct {
	l            log.Logger
	gemini       gemini.IGemini
	repo         repository.Repository
	metrics      *metrics.Collector
	displayLimit int
	now          func() time.Time
}

var _ playground.UseCase = (*implUseCase)(nil)

// New creates a new playground UseCase implementation.
// A nil collector disables metrics; displayLimit <= 0 means 5.
func New(l log.Logger, geminiClient gemini.IGemini, repo repository.Repository, collector *metrics.Collector, displayLimit int) *implUseCase {
	if displayLimit <= 0 {
		displayLimit = defaultDisplayLimit
	}
	return &implUseCase{
		l:            l,
		gemini:       geminiClient,
		repo:         repo,
		metrics:      collector,
		displayLimit: displayLimit,
		now:          time.Now,
	}
}
