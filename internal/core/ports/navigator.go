package ports

import "github.com/neobank/neobank/internal/core/domain"

// Navigator maps between the external location encoding and page identifiers,
// and surfaces user-driven back/forward movement.
type Navigator interface {
	// CurrentPage parses the current location, defaulting to main when the
	// encoded value is absent or unrecognized.
	CurrentPage() domain.PageID
	// NavigateTo encodes page into a new location entry without emitting an
	// event. Forward history beyond the current position is discarded.
	NavigateTo(page domain.PageID)
	// Events delivers the page decoded from the location after each
	// back/forward move. The page router must re-resolve whenever this fires.
	Events() <-chan domain.PageID
}
