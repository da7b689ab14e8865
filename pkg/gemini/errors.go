package gemini

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrMissingAPIKey         = errors.New("gemini: api key is required")
	ErrUnsupportedModel      = errors.New("unsupported model")
	ErrEmptyPrompt           = errors.New("prompt must not be empty")
	ErrTemperatureOutOfRange = errors.New("temperature must be between 0 and 1")
	ErrUnsupportedImage      = errors.New("unsupported image format (png, jpg, jpeg, webp)")
	ErrEmptyContents         = errors.New("request contents must not be empty")
	ErrMissingTextPart       = errors.New("request must end with a text part")
)

var keyRedactor = regexp.MustCompile(`(key=)[^&"\s]+`)

// RemoteError is any failure returned by the remote generation call.
// Incomplete is set when a stream failed after some text was already delivered;
// Partial then holds that text. A RemoteError is never a successful result.
type RemoteError struct {
	Op         string
	Err        error
	Incomplete bool
	Partial    string
}

func (e *RemoteError) Error() string {
	msg := keyRedactor.ReplaceAllString(e.Err.Error(), "$1[REDACTED]")
	if e.Incomplete {
		return fmt.Sprintf("gemini %s: interrupted after partial output: %s", e.Op, msg)
	}
	return fmt.Sprintf("gemini %s: %s", e.Op, msg)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemoteError reports whether err came from the remote service.
func IsRemoteError(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}
