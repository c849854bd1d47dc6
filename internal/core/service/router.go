package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/ports"
)

const msgMissingCredentials = "enter a username and password"

// PageRouter is the authoritative state transition function of the client:
// every navigation trigger — initial load, an explicit request, a completed
// login or registration, a logout, a back/forward move — funnels through it.
// For each trigger it reconciles the session where authenticated context is
// needed, resolves the effective page, makes that page the externally visible
// location, and hands it to the renderer.
//
// Overlapping triggers are not serialized and in-flight fetches are never
// cancelled, so a late profile response can overwrite a newer session state.
// This hazard is accepted rather than guarded: the client is single-threaded
// and event-driven, and the worst outcome is a return to the login page.
type PageRouter struct {
	store      ports.SessionStore
	gateway    ports.BackendGateway
	nav        ports.Navigator
	renderer   ports.Renderer
	reconciler *Reconciler
	log        zerolog.Logger
}

func NewPageRouter(
	store ports.SessionStore,
	gateway ports.BackendGateway,
	nav ports.Navigator,
	renderer ports.Renderer,
	reconciler *Reconciler,
	log zerolog.Logger,
) *PageRouter {
	return &PageRouter{
		store:      store,
		gateway:    gateway,
		nav:        nav,
		renderer:   renderer,
		reconciler: reconciler,
		log:        log,
	}
}

// EffectivePage applies the navigation invariant: an unauthenticated visitor
// may only see the login and register pages, everything else redirects to
// login. Authenticated visitors see whatever they asked for, auth pages
// included. Unrecognized requests have already collapsed to main by the time
// a PageID exists, so no extra defaulting happens here.
func EffectivePage(requested domain.PageID, authenticated bool) domain.PageID {
	if !authenticated && requested.RequiresAuth() {
		return domain.PageLogin
	}
	return requested
}

// Start handles the initial load: restore the persisted session, reconcile
// it against the backend when present, then resolve the page encoded in the
// current location.
func (r *PageRouter) Start(ctx context.Context) {
	session := r.store.Load()
	if session != nil {
		session = r.reconciler.Reconcile(ctx, session)
	}
	r.show(session, r.nav.CurrentPage())
}

// Navigate handles an explicit request for a page.
func (r *PageRouter) Navigate(ctx context.Context, page domain.PageID) {
	r.resolve(ctx, page)
}

// HandleLocationChange handles a back/forward move: the navigator has already
// changed the location, so page is the value decoded from it.
func (r *PageRouter) HandleLocationChange(ctx context.Context, page domain.PageID) {
	r.resolve(ctx, page)
}

func (r *PageRouter) resolve(ctx context.Context, page domain.PageID) {
	session := r.store.Load()
	if session != nil && page.RequiresAuth() {
		session = r.reconciler.Reconcile(ctx, session)
	}
	r.show(session, page)
}

// Login runs the login sub-flow and, on success, lands on main.
func (r *PageRouter) Login(ctx context.Context, username, pass string) {
	r.authenticate(ctx, ports.AuthLogin, username, pass)
}

// Register runs the registration sub-flow and, on success, lands on main.
func (r *PageRouter) Register(ctx context.Context, username, pass string) {
	r.authenticate(ctx, ports.AuthRegister, username, pass)
}

func (r *PageRouter) authenticate(ctx context.Context, kind ports.AuthKind, username, pass string) {
	username = strings.TrimSpace(username)
	pass = strings.TrimSpace(pass)
	if username == "" || pass == "" {
		r.renderer.ShowMessage(msgMissingCredentials)
		return
	}

	result, err := r.gateway.Authenticate(ctx, kind, username, pass)
	if err != nil {
		r.renderer.ShowMessage(err.Error())
		return
	}

	session := &domain.Session{ID: result.ID, Username: result.Username}
	if err := r.store.Save(session); err != nil {
		r.log.Error().Err(err).Msg("failed to persist session")
	}

	// Hydrate the balance straight away. If the backend rejects the session
	// it just handed out, this comes back nil and the transition below lands
	// on login instead of main.
	session = r.reconciler.Reconcile(ctx, session)
	r.show(session, domain.PageMain)
}

// Logout clears the session unconditionally and returns to the login page.
func (r *PageRouter) Logout(ctx context.Context) {
	if err := r.store.Save(nil); err != nil {
		r.log.Error().Err(err).Msg("failed to clear session store")
	}
	r.show(nil, domain.PageLogin)
}

// show performs the tail of every transition: resolve the effective page,
// synchronize the external location with it, render. The location is only
// pushed when it actually changes, so a back/forward move that resolves to
// the page already shown does not grow the history.
func (r *PageRouter) show(session *domain.Session, requested domain.PageID) {
	effective := EffectivePage(requested, session.Valid())
	if r.nav.CurrentPage() != effective {
		r.nav.NavigateTo(effective)
	}
	r.renderer.Render(session, effective)
}
