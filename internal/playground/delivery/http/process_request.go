package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxImageBytes is the inline-data ceiling of the Gemini API.
const maxImageBytes = 20 << 20

// processGenerateReq binds the multipart (or urlencoded) generate form and reads the optional image.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}

	if req.Image != nil {
		data, err := readImage(req.Image)
		if err != nil {
			return req, err
		}
		req.image = data
	}
	return req, nil
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return errEmptyPrompt
	}
	return nil
}

func readImage(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxImageBytes {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}
	return data, nil
}
