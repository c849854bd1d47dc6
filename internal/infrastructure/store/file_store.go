// Package store persists the client's session in a single JSON slot on disk,
// the local mirror of "who is logged in".
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
)

const fileMode = 0o600

// FileStore implements ports.SessionStore on top of one file. Absence of the
// file is absence of a session; an unreadable, unparseable, or partial record
// is treated the same way and never surfaced as an error.
type FileStore struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// DefaultPath places the slot under the user config directory, falling back
// to the working directory when none is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "neobank_session.json"
	}
	return filepath.Join(dir, "neobank", "session.json")
}

func (s *FileStore) Load() *domain.Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Err(err).Msg("session slot unreadable, treating as absent")
		}
		return nil
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.log.Debug().Err(err).Msg("session slot corrupt, treating as absent")
		return nil
	}
	if !session.Valid() {
		return nil
	}
	return &session
}

func (s *FileStore) Save(session *domain.Session) error {
	if session == nil {
		err := os.Remove(s.path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, fileMode)
}
