package session

import (
	"errors"
)

var (
	// ErrEmptyMessage rejects a submit whose text trims to nothing.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrBusy rejects a submit while a reply is being composed.
	ErrBusy = errors.New("a reply is already being composed")

	// ErrNotFound reports an unknown session ID.
	ErrNotFound = errors.New("session not found")
)
