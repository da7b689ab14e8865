package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "gemini-playground/internal/chat/delivery/http"
	chatUC "gemini-playground/internal/chat/usecase"
	"gemini-playground/internal/middleware"
	playgroundHTTP "gemini-playground/internal/playground/delivery/http"
	playgroundRepo "gemini-playground/internal/playground/repository/memory"
	playgroundUC "gemini-playground/internal/playground/usecase"
)

// setupPlaygroundDomain wires the playground page and /api/v1/playground.
func (srv HTTPServer) setupPlaygroundDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := playgroundRepo.New(srv.l, playgroundRepo.Config{
		MaxStored:   srv.playground.MaxStored,
		MaxSessions: srv.playground.MaxSessions,
		SessionTTL:  srv.playground.SessionTTL,
	})

	// 2. UseCase
	uc := playgroundUC.New(srv.l, srv.gemini, repo, srv.metrics, srv.playground.DisplayLimit)

	// 3. HTTP Handler
	h := playgroundHTTP.New(srv.l, uc, srv.playground.SessionTTL)

	// 4. Routes
	playgroundHTTP.RegisterPage(srv.gin, h)
	playgroundHTTP.RegisterRoutes(api.Group("/playground"), h, mw)

	srv.l.Infof(ctx, "Playground domain registered")
	return nil
}

// setupChatDomain wires /api/v1/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := chatUC.New(srv.l, srv.gemini, srv.metrics, chatUC.Config{
		SessionTTL:  srv.chat.SessionTTL,
		MaxSessions: srv.chat.MaxSessions,
	})

	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
