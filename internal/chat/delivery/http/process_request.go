package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processCreateSessionReq binds the optional session settings. An empty body means defaults.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// processSendMessageReq binds the message body and the session id URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	return req, nil
}
