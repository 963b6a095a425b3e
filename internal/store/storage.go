package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"socialnet-client/internal/model"
)

// userKey is the single named key the authenticated user is persisted under.
// The startup read and the login write must agree on it.
const userKey = "user"

const stateFileName = "state.json"

// Storage persists the client state as a small JSON document in the state
// directory, keyed like the browser's local storage would be.
type Storage struct {
	path string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Storage{path: filepath.Join(dir, stateFileName)}, nil
}

// LoadUser reads the persisted user, returning nil when no state exists.
func (s *Storage) LoadUser() (*model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal state file: %w", err)
	}

	raw, ok := doc[userKey]
	if !ok {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("unmarshal stored user: %w", err)
	}
	return &user, nil
}

func (s *Storage) SaveUser(user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	doc := map[string]json.RawMessage{userKey: raw}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Clear removes the persisted state entirely.
func (s *Storage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
