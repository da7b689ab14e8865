package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"gemini-playground/internal/chat"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
	"gemini-playground/pkg/metrics"
)

// Config bounds the session store.
type Config struct {
	SessionTTL  time.Duration
	MaxSessions int
}

type sessionEntry struct {
	session chat.Session
	chat    *gemini.ChatSession
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l        log.Logger
	gemini   gemini.IGemini
	metrics  *metrics.Collector
	sessions *expirable.LRU[string, *sessionEntry]
	now      func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation. Sessions expire SessionTTL after creation.
func New(l log.Logger, geminiClient gemini.IGemini, collector *metrics.Collector, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = time.Hour
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	return &implUseCase{
		l:        l,
		gemini:   geminiClient,
		metrics:  collector,
		sessions: expirable.NewLRU[string, *sessionEntry](cfg.MaxSessions, nil, cfg.SessionTTL),
		now:      time.Now,
	}
}
