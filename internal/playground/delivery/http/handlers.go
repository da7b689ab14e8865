package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gemini-playground/internal/playground"
	"gemini-playground/pkg/gemini"
	"gemini-playground/pkg/response"
)

// Page godoc
// @Summary     Playground page
// @Description Serves the browser playground and issues the session cookie.
// @Tags        Playground
// @Produce     html
// @Success     200
// @Router      / [GET]
func (h *handler) Page(c *gin.Context) {
	h.sessionID(c, true)
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Models godoc
// @Summary     List models
// @Description Returns the selectable models, default first.
// @Tags        Playground
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/playground/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, h.newModelsResp(h.uc.Models(c.Request.Context())))
}

// Generate godoc
// @Summary     Generate content
// @Description Runs one generation. With stream=true the response is text/event-stream
// @Description with "chunk" events carrying the accumulated text, then "done" or "error".
// @Tags        Playground
// @Accept      multipart/form-data
// @Produce     json
// @Produce     text/event-stream
// @Param       prompt             formData string  true  "Prompt text"
// @Param       model              formData string  false "Model name"
// @Param       system_instruction formData string  false "System instruction"
// @Param       temperature        formData number  false "Temperature (0..1, default 1)"
// @Param       disable_thinking   formData boolean false "Set thinking budget to 0"
// @Param       stream             formData boolean false "Stream the response as SSE"
// @Param       image              formData file    false "Optional png/jpeg/webp image"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Image too large"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Generation failed"
// @Router      /api/v1/playground/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := req.toInput(h.sessionID(c, true))

	if req.Stream {
		h.generateStream(c, input)
		return
	}

	output, err := h.uc.Generate(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// generateStream relays fragments as SSE. Errors raised before the first
// fragment are answered as plain JSON errors.
func (h *handler) generateStream(c *gin.Context, input playground.GenerateInput) {
	ctx := c.Request.Context()
	events := &sseWriter{c: c}

	output, err := h.uc.GenerateStream(ctx, input, func(acc string) {
		events.send(eventChunk, chunkEvent{Text: acc})
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateStream: %v", err)
		if !events.started {
			response.Error(c, h.mapError(err))
			return
		}

		ev := streamErrorEvent{Message: h.mapError(err).Message}
		var remoteErr *gemini.RemoteError
		if errors.As(err, &remoteErr) {
			ev.Incomplete = remoteErr.Incomplete
			ev.Partial = remoteErr.Partial
		}
		events.send(eventError, ev)
		return
	}

	events.send(eventDone, h.newGenerateResp(output))
}

// History godoc
// @Summary     Recent runs
// @Description Returns the newest runs of the caller's browser session.
// @Tags        Playground
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/playground/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := h.sessionID(c, false)
	if sessionID == "" {
		response.OK(c, historyResp{Entries: []historyEntryResp{}})
		return
	}

	output, err := h.uc.History(ctx, playground.HistoryInput{SessionID: sessionID})
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
