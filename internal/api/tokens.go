// internal/api/tokens.go
//
// Disk-backed session token cache. Holds nothing but the bearer token; the
// resolver still asks the server who the token belongs to on every cold
// start.

package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// TokenStore persists the session token under the app state dir.
type TokenStore struct {
	path string
}

// NewTokenStore stores the token at the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

type tokenFile struct {
	Token string `json:"token"`
}

// Load returns the cached token, or "" when none is cached.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		// A corrupt cache is the same as no cache.
		return "", nil
	}
	return tf.Token, nil
}

// Save writes the token, creating the state dir if needed.
func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(tokenFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the cached token.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
