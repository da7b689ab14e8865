package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/log"
	"gemini-playground/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Generation
	gemini  gemini.IGemini
	metrics *metrics.Collector

	playground PlaygroundConfig
	chat       ChatConfig
	rateLimit  int
}

// PlaygroundConfig bounds the browser run history.
type PlaygroundConfig struct {
	MaxStored    int
	DisplayLimit int
	SessionTTL   time.Duration
	MaxSessions  int
}

// ChatConfig bounds the chat session store.
type ChatConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Gemini  gemini.IGemini
	Metrics *metrics.Collector

	Playground PlaygroundConfig
	Chat       ChatConfig
	// RateLimitPerMin applies per client to generation routes. Zero disables it.
	RateLimitPerMin int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		gemini:      cfg.Gemini,
		metrics:     cfg.Metrics,
		playground:  cfg.Playground,
		chat:        cfg.Chat,
		rateLimit:   cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.gemini == nil {
		return errors.New("gemini client is required")
	}
	if srv.metrics == nil {
		return errors.New("metrics collector is required")
	}
	return nil
}
