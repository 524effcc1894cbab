package settings

import (
	"fmt"

	"github.com/atelier/backend/internal/domain/shared"
)

// Theme represents the UI theme preference
type Theme string

const (
	ThemeLight         Theme = "light"
	ThemeDark          Theme = "dark"
	ThemeSystemDefault Theme = "system_default"
)

// IsValid checks if the theme is valid
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystemDefault:
		return true
	}
	return false
}

// Language represents the UI language preference
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTurkish Language = "tr"
	LanguageFrench  Language = "fr"
)

// IsValid checks if the language is valid
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageTurkish, LanguageFrench:
		return true
	}
	return false
}

// DefaultSettingsID is the id of the single global settings record
const DefaultSettingsID = "global_app_settings"

// AppSettings holds application-wide preferences. There is exactly one record,
// persisted as a flat JSON object keyed by the fields below.
type AppSettings struct {
	SettingsID         string   `json:"settings_id"`
	Theme              Theme    `json:"theme"`
	Language           Language `json:"language"`
	BackupEnabled      bool     `json:"backup_enabled"`
	BackupLocation     string   `json:"backup_location"`
	SyncFrequencyHours *int     `json:"sync_frequency_hours"`
}

// Defaults returns the built-in settings used when no valid settings file
// exists
func Defaults() AppSettings {
	return AppSettings{
		SettingsID: DefaultSettingsID,
		Theme:      ThemeSystemDefault,
		Language:   LanguageEnglish,
	}
}

// Normalize falls back to defaults for any out-of-enum field. Settings loaded
// from disk degrade gracefully rather than failing the whole load.
func (s *AppSettings) Normalize() {
	if s.SettingsID == "" {
		s.SettingsID = DefaultSettingsID
	}
	if !s.Theme.IsValid() {
		s.Theme = ThemeSystemDefault
	}
	if !s.Language.IsValid() {
		s.Language = LanguageEnglish
	}
}

// SetTheme updates the theme
func (s *AppSettings) SetTheme(theme Theme) error {
	if !theme.IsValid() {
		return shared.NewDomainError("INVALID_THEME", fmt.Sprintf("Invalid theme: %s", theme))
	}
	s.Theme = theme
	return nil
}

// SetLanguage updates the language
func (s *AppSettings) SetLanguage(language Language) error {
	if !language.IsValid() {
		return shared.NewDomainError("INVALID_LANGUAGE", fmt.Sprintf("Invalid language: %s", language))
	}
	s.Language = language
	return nil
}

// SetBackupEnabled toggles backups
func (s *AppSettings) SetBackupEnabled(enabled bool) {
	s.BackupEnabled = enabled
}

// SetBackupLocation updates where backups are written
func (s *AppSettings) SetBackupLocation(location string) {
	s.BackupLocation = location
}

// SetSyncFrequency sets the sync interval in hours; nil disables scheduled
// sync
func (s *AppSettings) SetSyncFrequency(hours *int) error {
	if hours != nil && *hours <= 0 {
		return shared.NewDomainError("INVALID_SYNC_FREQUENCY", "Sync frequency must be a positive number of hours")
	}
	s.SyncFrequencyHours = hours
	return nil
}
