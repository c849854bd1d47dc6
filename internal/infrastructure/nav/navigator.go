// Package nav keeps the external location and the rendered page in step. A
// location is a query string with a single bare key whose value is the page
// id, e.g. "index.html?=login".
package nav

import (
	"strings"

	"github.com/neobank/neobank/internal/core/domain"
)

const (
	defaultLocation = "index.html"
	eventBuffer     = 16
)

// EncodeLocation produces the external location for a page.
func EncodeLocation(page domain.PageID) string {
	return defaultLocation + "?=" + string(page)
}

// PageFromLocation parses the page encoded in a location, defaulting to main
// when the query is missing or carries an unrecognized value.
func PageFromLocation(location string) domain.PageID {
	_, query, ok := strings.Cut(location, "?")
	if !ok {
		return domain.PageMain
	}
	// The encoding is "=<page>": one key whose name is empty.
	_, value, ok := strings.Cut(query, "=")
	if !ok {
		return domain.PageMain
	}
	return domain.ParsePage(value)
}

// Navigator implements ports.Navigator with an in-memory history stack,
// standing in for the browser's history and popstate events. It is not safe
// for concurrent use: the whole client is single-threaded and event-driven,
// and the navigator is only touched from the input loop.
type Navigator struct {
	entries []string
	pos     int
	events  chan domain.PageID
}

// New starts the history at the given location; an empty string means the
// bare document, which decodes to main.
func New(initial string) *Navigator {
	if initial == "" {
		initial = defaultLocation
	}
	return &Navigator{
		entries: []string{initial},
		events:  make(chan domain.PageID, eventBuffer),
	}
}

func (n *Navigator) CurrentPage() domain.PageID {
	return PageFromLocation(n.entries[n.pos])
}

// NavigateTo pushes a new entry, discarding any forward history, without
// emitting an event. Only user-driven back/forward moves notify.
func (n *Navigator) NavigateTo(page domain.PageID) {
	n.entries = append(n.entries[:n.pos+1], EncodeLocation(page))
	n.pos++
}

// Back moves one entry towards the oldest location and emits the page it
// decodes to. At the oldest entry it is a no-op.
func (n *Navigator) Back() {
	if n.pos == 0 {
		return
	}
	n.pos--
	n.emit()
}

// Forward moves one entry towards the newest location and emits the page it
// decodes to. At the newest entry it is a no-op.
func (n *Navigator) Forward() {
	if n.pos == len(n.entries)-1 {
		return
	}
	n.pos++
	n.emit()
}

func (n *Navigator) Events() <-chan domain.PageID {
	return n.events
}

func (n *Navigator) emit() {
	select {
	case n.events <- n.CurrentPage():
	default:
		// Listener is not draining; the newest location still wins when it
		// catches up via CurrentPage.
	}
}
