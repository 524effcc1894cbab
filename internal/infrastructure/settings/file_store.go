package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	domain "github.com/atelier/backend/internal/domain/settings"
	"go.uber.org/zap"
)

// FileStore persists the single AppSettings record as a flat JSON file
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a store backed by the given file path
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load reads settings from disk. A missing or malformed file is replaced
// with defaults, which are written back so the next load succeeds cleanly.
func (s *FileStore) Load() (domain.AppSettings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Failed to read settings file, using defaults",
				zap.String("path", s.path),
				zap.Error(err))
		}
		return s.reset()
	}

	var loaded domain.AppSettings
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("Settings file is malformed, using defaults",
			zap.String("path", s.path),
			zap.Error(err))
		return s.reset()
	}

	loaded.Normalize()
	return loaded, nil
}

// Save writes settings to disk, creating the parent directory if needed
func (s *FileStore) Save(settings domain.AppSettings) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (s *FileStore) reset() (domain.AppSettings, error) {
	defaults := domain.Defaults()
	if err := s.Save(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}
