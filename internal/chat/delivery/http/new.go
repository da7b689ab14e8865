package http

import (
	"github.com/gin-gonic/gin"

	"gemini-playground/internal/chat"
	"gemini-playground/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	SendMessage(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
