package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/ports"
)

// Reconciler refreshes the local session mirror from server truth. It is the
// single point where server-side invalidation propagates into client state.
type Reconciler struct {
	store   ports.SessionStore
	gateway ports.BackendGateway
	log     zerolog.Logger
}

func NewReconciler(store ports.SessionStore, gateway ports.BackendGateway, log zerolog.Logger) *Reconciler {
	return &Reconciler{store: store, gateway: gateway, log: log}
}

// Reconcile fetches the profile for the given session and merges the result
// into it, fetched fields winning on conflict. Any fetch failure — the
// backend rejecting the session or the backend being unreachable — clears the
// store and returns nil: the forced-logout path. A nil session is a no-op.
func (r *Reconciler) Reconcile(ctx context.Context, session *domain.Session) *domain.Session {
	if session == nil {
		return nil
	}

	profile, err := r.gateway.FetchProfile(ctx, session.ID)
	if err != nil {
		r.log.Warn().Err(err).
			Str("user_id", string(session.ID)).
			Msg("profile fetch rejected, invalidating session")
		if saveErr := r.store.Save(nil); saveErr != nil {
			r.log.Error().Err(saveErr).Msg("failed to clear session store")
		}
		return nil
	}

	merged := *session
	if profile.Username != "" {
		merged.Username = profile.Username
	}
	if profile.Balance != nil {
		merged.Balance = profile.Balance
	}

	if err := r.store.Save(&merged); err != nil {
		r.log.Error().Err(err).Msg("failed to persist reconciled session")
	}
	return &merged
}
