package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"chapterhub/internal/domain"
)

// sessionRecord is the on-disk shape of the session flag file.
type sessionRecord struct {
	SessionID string `json:"sessionId"`
}

type fileSessionStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSessionStore returns a SessionStore persisting the active admin
// session id in its own file, independent of the catalog blob. The recorded
// session survives restarts and is removed only by logout.
func NewFileSessionStore(path string) domain.SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Put(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(sessionRecord{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *fileSessionStore) Has(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read session file: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Corrupt flag means no usable session.
		return false, nil
	}
	return rec.SessionID != "" && rec.SessionID == sessionID, nil
}

func (s *fileSessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err == nil && rec.SessionID != sessionID {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
