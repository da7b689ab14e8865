package middleware

import (
	"gemini-playground/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	// RequestsPerMin is the per-client budget on generation routes. Zero disables limiting.
	RequestsPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
