package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionRejected = errors.New("invalid session")

// BackendError is any failure reported by (or on the way to) the backend.
// The backend signals semantic failures through an {"error": "..."} payload;
// those arrive with Transport=false and Message set verbatim. Unreachable
// hosts and undecodable responses arrive as the same type with a generic
// message and Transport=true. Callers that only care about success/failure —
// the reconciler and router deliberately fall in that group — treat both
// identically.
type BackendError struct {
	Message   string
	Transport bool
}

func (e *BackendError) Error() string {
	return e.Message
}
