package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Settings is the persisted, engine-facing document owned by the Store.
type Settings struct {
	EmbeddingModel   string `yaml:"embedding_model"`
	APIKey           string `yaml:"api_key"`
	BaseURL          string `yaml:"base_url"`
	BaseDir          string `yaml:"base_dir"`
	TempDir          string `yaml:"temp_dir"`
	ResourcePacksDir string `yaml:"resource_packs_dir"`
}

func applySettingsDefaults(s *Settings) {
	if s.EmbeddingModel == "" {
		s.EmbeddingModel = "BAAI/bge-m3"
	}
	if s.BaseDir == "" {
		s.BaseDir = "."
	}
	if s.TempDir == "" {
		s.TempDir = filepath.Join(s.BaseDir, "data", "temp")
	}
	if s.ResourcePacksDir == "" {
		s.ResourcePacksDir = filepath.Join(s.BaseDir, "data", "resource_packs")
	}
}

// Store loads and saves Settings on disk. Saves are serialised in-process by a
// mutex and across processes by a lock file next to the settings file.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted settings. A missing file yields defaults.
func (s *Store) Load() (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) load() (*Settings, error) {
	var settings Settings

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read settings file %s: %w", s.path, err)
	default:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", s.path, err)
		}
	}

	applySettingsDefaults(&settings)
	return &settings, nil
}

// Save writes the full settings document.
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(func() error {
		return s.write(settings)
	})
}

// SaveCredentials merges the engine credentials into the persisted document,
// leaving directory settings untouched.
func (s *Store) SaveCredentials(model, apiKey, baseURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(func() error {
		current, err := s.load()
		if err != nil {
			return err
		}

		current.EmbeddingModel = model
		current.APIKey = apiKey
		current.BaseURL = baseURL

		return s.write(*current)
	})
}

func (s *Store) withFileLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings file: %w", err)
	}
	defer func() {
		_ = fileLock.Unlock()
	}()

	return fn()
}

func (s *Store) write(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close settings file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}
