package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "session.json"), zerolog.Nop())
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	balance := 500.0
	session := &domain.Session{ID: "1", Username: "alice", Balance: &balance}

	if err := s.Save(session); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.Load()
	if got == nil {
		t.Fatalf("expected session, got nil")
	}
	if got.ID != "1" || got.Username != "alice" || got.Balance == nil || *got.Balance != 500.0 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.Load(); got != nil {
		t.Fatalf("expected nil for missing slot, got %+v", got)
	}
}

func TestFileStore_CorruptPayload(t *testing.T) {
	payloads := []string{
		"not json at all",
		`{"id":`,
		`[1,2,3]`,
		`"just a string"`,
		`{"id":"1"}`,              // partial: no username
		`{"username":"alice"}`,    // partial: no id
		`{"id":"","username":""}`, // empty fields
	}

	for _, payload := range payloads {
		dir := t.TempDir()
		path := filepath.Join(dir, "session.json")
		if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		s := New(path, zerolog.Nop())
		if got := s.Load(); got != nil {
			t.Errorf("payload %q: expected nil, got %+v", payload, got)
		}
	}
}

func TestFileStore_SaveNilClears(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(&domain.Session{ID: "1", Username: "alice"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := s.Load(); got != nil {
		t.Fatalf("expected nil after clear, got %+v", got)
	}
	// Clearing an already-empty slot is not an error.
	if err := s.Save(nil); err != nil {
		t.Fatalf("clear empty slot: %v", err)
	}
}

func TestFileStore_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
	s := New(path, zerolog.Nop())
	if err := s.Save(&domain.Session{ID: "1", Username: "alice"}); err != nil {
		t.Fatalf("save into missing dirs: %v", err)
	}
	if got := s.Load(); got == nil {
		t.Fatalf("expected session back")
	}
}
