package settings

// Store defines the interface for settings persistence
type Store interface {
	// Load reads the persisted settings. Implementations fall back to
	// Defaults (and persist them) when nothing valid is stored.
	Load() (AppSettings, error)

	// Save persists the settings
	Save(settings AppSettings) error
}
