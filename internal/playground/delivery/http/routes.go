package http

import (
	"github.com/gin-gonic/gin"

	"gemini-playground/internal/middleware"
)

// RegisterRoutes maps the playground API under rg. Generation is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/models", h.Models)
	rg.POST("/generate", mw.RateLimit(), h.Generate)
	rg.GET("/history", h.History)
}

// RegisterPage serves the playground page at the root path.
func RegisterPage(r gin.IRoutes, h *handler) {
	r.GET("/", h.Page)
}
