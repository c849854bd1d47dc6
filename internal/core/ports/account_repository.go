package ports

import (
	"context"

	"github.com/neobank/neobank/internal/core/domain"
)

// AccountRepository defines the interface for account persistence on the
// backend side.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
