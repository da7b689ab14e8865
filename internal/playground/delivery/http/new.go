package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"gemini-playground/internal/playground"
	"gemini-playground/pkg/log"
)

// Handler is the public interface for the playground HTTP delivery layer.
type Handler interface {
	Page(c *gin.Context)
	Models(c *gin.Context)
	Generate(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         playground.UseCase
	sessionTTL time.Duration
}

// New creates a new HTTP handler for the playground domain.
// sessionTTL sets the lifetime of the browser session cookie.
func New(l log.Logger, uc playground.UseCase, sessionTTL time.Duration) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		sessionTTL: sessionTTL,
	}
}
