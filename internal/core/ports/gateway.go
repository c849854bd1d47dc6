package ports

import (
	"context"

	"github.com/neobank/neobank/internal/core/domain"
)

// AuthKind selects which credential flow Authenticate performs.
type AuthKind string

const (
	AuthLogin    AuthKind = "login"
	AuthRegister AuthKind = "register"
)

// AuthResult is the shared success shape of both login and registration.
type AuthResult struct {
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
}

// Profile carries the account fields returned by a profile fetch. Pointer
// fields distinguish "absent from the response" from a zero value so the
// reconciler can merge without clobbering.
type Profile struct {
	Username string   `json:"username"`
	Balance  *float64 `json:"balance"`
}

// BackendGateway issues credential-bearing requests against the remote
// banking API. Every call carries the session cookie automatically, so no
// method takes an explicit token. Failures — whether reported by the backend
// in its error payload or caused by transport trouble — surface as
// *domain.BackendError. No retries, no caching.
type BackendGateway interface {
	Authenticate(ctx context.Context, kind AuthKind, username, pass string) (*AuthResult, error)
	FetchProfile(ctx context.Context, id domain.UserID) (*Profile, error)
}
