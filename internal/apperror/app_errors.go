package apperror

import "errors"

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCorruptSnapshot  = errors.New("corrupt game snapshot")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIDMissing = errors.New("session id is empty")
)
