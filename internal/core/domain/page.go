package domain

// PageID identifies one of the client's views. It is the sole datum exchanged
// between the navigation controller and the page router.
type PageID string

const (
	PageLogin    PageID = "login"
	PageRegister PageID = "register"
	PageMain     PageID = "main"
)

// ParsePage maps an external page value to a PageID. Anything unrecognized
// (including the empty string) falls back to PageMain.
func ParsePage(s string) PageID {
	switch PageID(s) {
	case PageLogin:
		return PageLogin
	case PageRegister:
		return PageRegister
	default:
		return PageMain
	}
}

// RequiresAuth reports whether the page only makes sense with an
// authenticated session. Login and register are reachable anonymously;
// everything else is not.
func (p PageID) RequiresAuth() bool {
	return p != PageLogin && p != PageRegister
}
