package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage persists the session identifier between runs. Load returning
// an empty identifier means none is stored yet.
type Storage interface {
	Load() (string, error)
	Save(sid string) error
	Clear() error
}

// FileStorage keeps the identifier in a single file, created on first
// save together with its parent directory.
type FileStorage struct {
	path string
}

var _ Storage = &FileStorage{}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f *FileStorage) Save(sid string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, []byte(sid+"\n"), 0o600)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStorage holds the identifier for the process lifetime. It backs
// deployments with no configured storage path, and tests.
type MemoryStorage struct {
	mu  sync.Mutex
	sid string
}

var _ Storage = &MemoryStorage{}

func (m *MemoryStorage) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sid, nil
}

func (m *MemoryStorage) Save(sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sid = sid
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sid = ""
	return nil
}
