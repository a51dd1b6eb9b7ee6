package tool

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Setting keys understood by the client. The store itself is schema-free;
// callers always supply their own default.
const (
	SettingBackendURL    = "backend_url"
	SettingModel         = "model"
	SettingCurrency      = "currency"
	SettingIncludeImages = "include_images"
)

const (
	DefaultBackendURL = "http://127.0.0.1:5011"
	DefaultModel      = "gpt-5-mini"
	DefaultCurrency   = "EUR"
)

// Store is a YAML-backed key/value settings store. Reads answer with the
// caller-supplied default when the key is absent or unparseable.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// LoadStore reads the settings file at path, creating it with an empty map
// when it does not exist yet.
func LoadStore(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]string{}}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := s.persist(); writeErr != nil {
				return s, fmt.Errorf("settings file not found, and failed to create it: %v", writeErr)
			}
			DefaultLogger.Infof("Created new settings file at %s", path)
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %v", err)
	}
	if info.IsDir() {
		return s, fmt.Errorf("settings file path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %v", err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return s, fmt.Errorf("failed to parse settings file: %v", err)
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s, nil
}

// NewMemoryStore returns a store that never touches disk. Used by tests and
// by callers that run without a settings file.
func NewMemoryStore() *Store {
	return &Store{values: map[string]string{}}
}

func (s *Store) GetString(key, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

func (s *Store) GetBool(key string, def bool) bool {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Set stores the value and persists the whole map when the store is
// file-backed.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	path := s.path
	data, err := yaml.Marshal(s.values)
	s.mu.Unlock()
	if path == "" {
		return
	}
	if err == nil {
		err = os.WriteFile(path, data, 0o644)
	}
	if err != nil {
		DefaultLogger.Warnf("Failed to persist settings: %v", err)
	}
}

// Snapshot returns a copy of all stored values.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *Store) persist() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
