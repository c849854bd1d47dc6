// Package term renders the client's views as plain text. Presentation only:
// the input loop in cmd/neobank owns translating commands into router calls.
package term

import (
	"fmt"
	"io"

	"github.com/neobank/neobank/internal/core/domain"
)

// Renderer implements ports.Renderer on an io.Writer.
type Renderer struct {
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Render(session *domain.Session, page domain.PageID) {
	switch page {
	case domain.PageLogin:
		fmt.Fprintln(r.out, "=== NeoBank — Sign in ===")
		fmt.Fprintln(r.out, "  login <username> <password>")
		fmt.Fprintln(r.out, "  no account? go register")
	case domain.PageRegister:
		fmt.Fprintln(r.out, "=== NeoBank — Create account ===")
		fmt.Fprintln(r.out, "  register <username> <password>")
		fmt.Fprintln(r.out, "  already registered? go login")
	default:
		fmt.Fprintf(r.out, "=== Balance: %s ===\n", FormatBalance(session))
		if session != nil {
			fmt.Fprintf(r.out, "Welcome, %s!\n", session.Username)
		}
		fmt.Fprintln(r.out, "  refresh | logout | quit")
		fmt.Fprintln(r.out, "  transfers are coming in a future release")
	}
}

func (r *Renderer) ShowMessage(text string) {
	fmt.Fprintf(r.out, "! %s\n", text)
}

// FormatBalance renders the session's balance, or a placeholder while it has
// not been hydrated yet.
func FormatBalance(session *domain.Session) string {
	if session == nil || session.Balance == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f RUB", *session.Balance)
}
