package memory

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"gemini-playground/internal/playground"
	"gemini-playground/internal/playground/repository"
	"gemini-playground/pkg/log"
)

// Config bounds the store.
type Config struct {
	// MaxStored caps the runs kept per session; older runs are evicted.
	MaxStored int
	// MaxSessions caps the number of tracked browser sessions.
	MaxSessions int
	// SessionTTL expires a session this long after its last insert.
	SessionTTL time.Duration
}

type runCache = lru.Cache[string, playground.RunRecord]

// implRepository keeps every session's history in process memory.
type implRepository struct {
	l         log.Logger
	mu        sync.Mutex
	sessions  *expirable.LRU[string, *runCache]
	maxStored int
	now       func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory playground repository.
func New(l log.Logger, cfg Config) *implRepository {
	if cfg.MaxStored <= 0 {
		cfg.MaxStored = 50
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	return &implRepository{
		l:         l,
		sessions:  expirable.NewLRU[string, *runCache](cfg.MaxSessions, nil, cfg.SessionTTL),
		maxStored: cfg.MaxStored,
		now:       time.Now,
	}
}
