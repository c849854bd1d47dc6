package ports

import "github.com/neobank/neobank/internal/core/domain"

// SessionStore owns the single persisted session slot. It is pure get/set:
// no business logic, no network access.
type SessionStore interface {
	// Load reads the persisted record. Missing, corrupt, or partial records
	// all come back as nil — absence is never an error condition.
	Load() *domain.Session
	// Save overwrites the slot in one synchronous write; nil clears it.
	Save(session *domain.Session) error
}
