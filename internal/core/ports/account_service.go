package ports

import (
	"context"

	"github.com/neobank/neobank/internal/core/domain"
)

// AccountService implements the backend's registration, login, and profile
// operations. Register and Login return the account together with a signed
// session token for the response cookie.
type AccountService interface {
	Register(ctx context.Context, username, pass string) (*domain.Account, string, error)
	Login(ctx context.Context, username, pass string) (*domain.Account, string, error)
	// Profile returns the account for requestedID, provided tokenID is a live
	// session whose subject matches both subjectID and requestedID.
	Profile(ctx context.Context, tokenID, subjectID, requestedID string) (*domain.Account, error)
}
