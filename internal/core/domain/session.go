package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UserID is the opaque account identifier handed out by the backend. The wire
// format is not fixed: the backend may encode it as a JSON string or a JSON
// number, so decoding accepts both.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*id = UserID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// Session is the client-side mirror of the authenticated identity. It is
// either wholly absent (a nil *Session) or carries a non-empty ID and
// Username. Balance stays nil until the first profile fetch hydrates it.
type Session struct {
	ID       UserID   `json:"id"`
	Username string   `json:"username"`
	Balance  *float64 `json:"balance,omitempty"`
}

// Valid reports whether the session may be persisted or rendered. Partial
// records (an ID without a username, or vice versa) are never valid.
func (s *Session) Valid() bool {
	return s != nil && s.ID != "" && s.Username != ""
}
