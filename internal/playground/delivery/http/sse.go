package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	eventChunk = "chunk"
	eventDone  = "done"
	eventError = "error"
)

// sseWriter writes server-sent events, committing the stream headers on the first event.
type sseWriter struct {
	c       *gin.Context
	started bool
}

func (w *sseWriter) send(event string, data any) {
	if !w.started {
		header := w.c.Writer.Header()
		header.Set("Content-Type", "text/event-stream")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
		header.Set("X-Accel-Buffering", "no")
		w.c.Status(http.StatusOK)
		w.started = true
	}

	w.c.SSEvent(event, data)
	w.c.Writer.Flush()
}
