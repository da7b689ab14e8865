package http

import (
	"errors"
	"net/http"

	"gemini-playground/internal/chat"
	pkgErrors "gemini-playground/pkg/errors"
	"gemini-playground/pkg/gemini"
)

var (
	errSessionNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "chat session not found")
	errEmptyMessage     = pkgErrors.NewHTTPError(http.StatusBadRequest, "message must not be empty")
	errUnsupportedModel = pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported model")
	errTemperatureRange = pkgErrors.NewHTTPError(http.StatusBadRequest, "temperature must be between 0 and 1")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	var remoteErr *gemini.RemoteError
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, gemini.ErrEmptyPrompt):
		return errEmptyMessage
	case errors.Is(err, gemini.ErrUnsupportedModel):
		return errUnsupportedModel
	case errors.Is(err, gemini.ErrTemperatureOutOfRange):
		return errTemperatureRange
	case errors.As(err, &remoteErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, remoteErr.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
