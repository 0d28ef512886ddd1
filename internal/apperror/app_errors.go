package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrUnknownAction   = errors.New("unknown action")
	ErrPayloadMissing  = errors.New("payload is required")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session is closed")
)
