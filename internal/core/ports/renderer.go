package ports

import "github.com/neobank/neobank/internal/core/domain"

// Renderer turns a session and an effective page into visible output. It is
// pure presentation: it never mutates the session and never calls back into
// the router.
type Renderer interface {
	Render(session *domain.Session, page domain.PageID)
	// ShowMessage surfaces a transient, non-fatal notice (validation
	// failures, backend-reported errors).
	ShowMessage(text string)
}
