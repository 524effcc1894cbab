package settings

import (
	"github.com/atelier/backend/internal/domain/settings"
	"go.uber.org/zap"
)

// UpdateInput carries the editable settings fields. Nil fields are left
// untouched. SyncFrequencyHours is a pointer to a pointer so the caller can
// distinguish "not provided" from "clear the schedule".
type UpdateInput struct {
	Theme              *settings.Theme
	Language           *settings.Language
	BackupEnabled      *bool
	BackupLocation     *string
	SyncFrequencyHours **int
}

// Service manages the single global application settings record
type Service struct {
	store  settings.Store
	logger *zap.Logger
}

// NewService creates a new settings service
func NewService(store settings.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the current settings, falling back to defaults if nothing
// valid is stored
func (s *Service) Get() (settings.AppSettings, error) {
	return s.store.Load()
}

// Update applies the provided fields and persists the result
func (s *Service) Update(in UpdateInput) (settings.AppSettings, error) {
	current, err := s.store.Load()
	if err != nil {
		return current, err
	}

	if in.Theme != nil {
		if err := current.SetTheme(*in.Theme); err != nil {
			return current, err
		}
	}
	if in.Language != nil {
		if err := current.SetLanguage(*in.Language); err != nil {
			return current, err
		}
	}
	if in.BackupEnabled != nil {
		current.SetBackupEnabled(*in.BackupEnabled)
	}
	if in.BackupLocation != nil {
		current.SetBackupLocation(*in.BackupLocation)
	}
	if in.SyncFrequencyHours != nil {
		if err := current.SetSyncFrequency(*in.SyncFrequencyHours); err != nil {
			return current, err
		}
	}

	if err := s.store.Save(current); err != nil {
		return current, err
	}
	s.logger.Info("Settings updated",
		zap.String("theme", string(current.Theme)),
		zap.String("language", string(current.Language)),
	)
	return current, nil
}

// Reset restores the built-in defaults and persists them
func (s *Service) Reset() (settings.AppSettings, error) {
	defaults := settings.Defaults()
	if err := s.store.Save(defaults); err != nil {
		return defaults, err
	}
	s.logger.Info("Settings reset to defaults")
	return defaults, nil
}
