package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/ports"
)

func TestReconciler_NilSession(t *testing.T) {
	store := &stubStore{}
	gw := &stubGateway{}
	r := NewReconciler(store, gw, zerolog.Nop())

	if got := r.Reconcile(context.Background(), nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if gw.fetchCalls != 0 {
		t.Fatalf("nil session must not hit the network")
	}
}

func TestReconciler_SuccessMergesAndPersists(t *testing.T) {
	balance := 500.0
	session := &domain.Session{ID: "1", Username: "alice"}
	store := &stubStore{session: session}
	gw := &stubGateway{
		fetchProfileFn: func(_ context.Context, id domain.UserID) (*ports.Profile, error) {
			return &ports.Profile{Username: "alice", Balance: &balance}, nil
		},
	}
	r := NewReconciler(store, gw, zerolog.Nop())

	got := r.Reconcile(context.Background(), session)
	if got == nil || got.Balance == nil || *got.Balance != 500.0 {
		t.Fatalf("merged session = %+v", got)
	}
	if got.ID != "1" || got.Username != "alice" {
		t.Fatalf("identity fields lost in merge: %+v", got)
	}

	persisted := store.Load()
	if persisted == nil || persisted.Balance == nil || *persisted.Balance != 500.0 {
		t.Fatalf("merged session not persisted: %+v", persisted)
	}
}

func TestReconciler_FetchedFieldsWin(t *testing.T) {
	oldBalance := 100.0
	newBalance := 250.0
	session := &domain.Session{ID: "1", Username: "alice", Balance: &oldBalance}
	store := &stubStore{session: session}
	gw := &stubGateway{
		fetchProfileFn: func(_ context.Context, _ domain.UserID) (*ports.Profile, error) {
			return &ports.Profile{Username: "alice2", Balance: &newBalance}, nil
		},
	}
	r := NewReconciler(store, gw, zerolog.Nop())

	got := r.Reconcile(context.Background(), session)
	if got.Username != "alice2" || *got.Balance != 250.0 {
		t.Fatalf("fetched fields should win: %+v", got)
	}
}

func TestReconciler_RejectionClearsStore(t *testing.T) {
	session := &domain.Session{ID: "1", Username: "alice"}
	store := &stubStore{session: session}
	gw := &stubGateway{
		fetchProfileFn: func(_ context.Context, _ domain.UserID) (*ports.Profile, error) {
			return nil, &domain.BackendError{Message: "invalid"}
		},
	}
	r := NewReconciler(store, gw, zerolog.Nop())

	if got := r.Reconcile(context.Background(), session); got != nil {
		t.Fatalf("expected forced logout, got %+v", got)
	}
	if store.Load() != nil {
		t.Fatalf("store should be cleared on rejection")
	}
}

func TestReconciler_TransportFailureAlsoClears(t *testing.T) {
	// The merged error treatment: an unreachable backend forces logout the
	// same way a semantic rejection does.
	session := &domain.Session{ID: "1", Username: "alice"}
	store := &stubStore{session: session}
	gw := &stubGateway{
		fetchProfileFn: func(_ context.Context, _ domain.UserID) (*ports.Profile, error) {
			return nil, &domain.BackendError{Message: "banking service unavailable", Transport: true}
		},
	}
	r := NewReconciler(store, gw, zerolog.Nop())

	if got := r.Reconcile(context.Background(), session); got != nil {
		t.Fatalf("expected forced logout, got %+v", got)
	}
	if store.Load() != nil {
		t.Fatalf("store should be cleared on transport failure")
	}
}
