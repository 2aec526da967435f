package logic

import "errors"

// Error taxonomy surfaced to the HTTP boundary. None of these may leave
// any state written: validation runs before any persistence.
var (
	// ErrInvalidRequest marks malformed or missing required fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUserNotFound marks a user id or wallet with no matching entity.
	ErrUserNotFound = errors.New("user not found")
	// ErrConflict marks inputs that collide with existing state, such as
	// a username that is already taken.
	ErrConflict = errors.New("conflict")
)
