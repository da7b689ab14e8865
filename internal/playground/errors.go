package playground

import "errors"

var (
	ErrMissingSession = errors.New("session id is required")
)
