package game

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveData is the persisted session progress.
type SaveData struct {
	CurrentLevel int   `json:"current_level"`
	Timestamp    int64 `json:"timestamp"`
}

// Store is the key-value persistence capability the engine is handed.
// Implementations must never fail hard: Load falls back to def, Save
// reports success.
type Store interface {
	Load(key string, def SaveData) SaveData
	Save(key string, data SaveData) bool
}

// FileStore keeps one JSON file per key under a directory.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Load reads the saved value for key, returning def when the file is
// missing or unreadable.
func (s *FileStore) Load(key string, def SaveData) SaveData {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return def
	}
	data := def
	if err := json.Unmarshal(raw, &data); err != nil {
		return def
	}
	return data
}

// Save writes the value for key, creating the directory if needed.
func (s *FileStore) Save(key string, data SaveData) bool {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return false
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return false
	}
	return os.WriteFile(s.path(key), raw, 0o644) == nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// NullStore discards saves and always loads the default. Useful for tests
// and for running without a writable disk.
type NullStore struct{}

func (NullStore) Load(_ string, def SaveData) SaveData { return def }
func (NullStore) Save(string, SaveData) bool           { return true }
