package http

import (
	"errors"
	"net/http"

	"gemini-playground/internal/playground"
	pkgErrors "gemini-playground/pkg/errors"
	"gemini-playground/pkg/gemini"
)

var (
	errEmptyPrompt      = pkgErrors.NewHTTPError(http.StatusBadRequest, "prompt must not be empty")
	errUnsupportedModel = pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported model")
	errTemperatureRange = pkgErrors.NewHTTPError(http.StatusBadRequest, "temperature must be between 0 and 1")
	errUnsupportedImage = pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported image format (png, jpg, jpeg, webp)")
	errImageTooLarge    = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "image is too large")
	errMissingSession   = pkgErrors.NewHTTPError(http.StatusBadRequest, "session cookie is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500 so internals are never echoed to the browser.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	var remoteErr *gemini.RemoteError
	switch {
	case errors.Is(err, gemini.ErrEmptyPrompt):
		return errEmptyPrompt
	case errors.Is(err, gemini.ErrUnsupportedModel):
		return errUnsupportedModel
	case errors.Is(err, gemini.ErrTemperatureOutOfRange):
		return errTemperatureRange
	case errors.Is(err, gemini.ErrUnsupportedImage):
		return errUnsupportedImage
	case errors.Is(err, playground.ErrMissingSession):
		return errMissingSession
	case errors.As(err, &remoteErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, remoteErr.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
