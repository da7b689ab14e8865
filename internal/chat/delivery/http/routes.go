package http

import (
	"github.com/gin-gonic/gin"

	"gemini-playground/internal/middleware"
)

// RegisterRoutes maps the chat API under rg. Sending is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.POST("/:id/messages", mw.RateLimit(), h.SendMessage)
		sessions.GET("/:id/history", h.History)
	}
}
