package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// TokenStore persists an access token across runs. Implementations never
// surface storage failures; a token that cannot be read is simply absent.
type TokenStore interface {
	Save(token string)
	Load() (string, bool)
	Clear()
}

// FileTokenStore keeps the token in a single file under the user's config
// directory.
type FileTokenStore struct {
	path   string
	logger *zap.Logger
}

// NewFileTokenStore builds a store at path, or the default location when
// path is empty.
func NewFileTokenStore(path string, logger *zap.Logger) *FileTokenStore {
	if path == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(configDir, "smartbiz360", "token")
		}
	}
	return &FileTokenStore{path: path, logger: logger}
}

// Save writes the token, creating the parent directory as needed. Write
// failures are swallowed.
func (s *FileTokenStore) Save(token string) {
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.logger.Debug("token store: mkdir failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		s.logger.Debug("token store: write failed", zap.Error(err))
	}
}

// Load returns the stored token, or false when missing or unreadable.
func (s *FileTokenStore) Load() (string, bool) {
	if s.path == "" {
		return "", false
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored token. Removing an absent token is a no-op.
func (s *FileTokenStore) Clear() {
	if s.path == "" {
		return
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Debug("token store: remove failed", zap.Error(err))
	}
}

// MemoryTokenStore is an in-process TokenStore for tests.
type MemoryTokenStore struct {
	mu      sync.Mutex
	token   string
	present bool
}

// NewMemoryTokenStore builds an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(token string) {
	s.mu.Lock()
	s.token, s.present = token, true
	s.mu.Unlock()
}

func (s *MemoryTokenStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.present
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	s.token, s.present = "", false
	s.mu.Unlock()
}
