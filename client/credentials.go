package client

import (
	"encoding/json"
	"os"
	"sync"
)

// CredentialStore persists the bearer token and the cached user between
// process runs.
type CredentialStore interface {
	Token() string
	User() *User
	Save(token string, user *User) error
	Clear() error
}

type storedCredentials struct {
	Token string          `json:"token,omitempty"`
	User  json.RawMessage `json:"user,omitempty"`
}

// FileStore keeps the token and user together in a single JSON file. A
// missing or unreadable file behaves as an empty store, and a corrupt user
// record is reported as absent rather than as an error.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() storedCredentials {
	var creds storedCredentials
	data, err := os.ReadFile(s.path)
	if err != nil {
		return creds
	}
	_ = json.Unmarshal(data, &creds)
	return creds
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

func (s *FileStore) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.load().User
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}

// Save writes the token and user as one atomic pair.
func (s *FileStore) Save(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := storedCredentials{Token: token}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		creds.User = raw
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes both credentials. Clearing an already empty store is a
// no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
