package domain

import (
	"encoding/json"
	"testing"
)

func TestSession_Valid(t *testing.T) {
	balance := 500.0
	cases := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"nil", nil, false},
		{"complete", &Session{ID: "1", Username: "alice"}, true},
		{"with balance", &Session{ID: "1", Username: "alice", Balance: &balance}, true},
		{"missing id", &Session{Username: "alice"}, false},
		{"missing username", &Session{ID: "1"}, false},
		{"empty", &Session{}, false},
	}

	for _, c := range cases {
		if got := c.session.Valid(); got != c.want {
			t.Errorf("%s: Valid() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestUserID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want UserID
	}{
		{`"abc123"`, "abc123"},
		{`1`, "1"},
		{`42`, "42"},
		{`null`, ""},
	}

	for _, c := range cases {
		var id UserID
		if err := json.Unmarshal([]byte(c.in), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if id != c.want {
			t.Errorf("unmarshal %s = %q, want %q", c.in, id, c.want)
		}
	}

	var id UserID
	if err := json.Unmarshal([]byte(`{"nested":true}`), &id); err == nil {
		t.Fatalf("expected error for object-valued id")
	}
}
