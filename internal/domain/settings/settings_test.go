package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.Equal(t, DefaultSettingsID, s.SettingsID)
	assert.Equal(t, ThemeSystemDefault, s.Theme)
	assert.Equal(t, LanguageEnglish, s.Language)
	assert.False(t, s.BackupEnabled)
	assert.Nil(t, s.SyncFrequencyHours)
}

func TestNormalizeDegradesUnknownValues(t *testing.T) {
	s := AppSettings{Theme: Theme("neon"), Language: Language("xx")}
	s.Normalize()
	assert.Equal(t, DefaultSettingsID, s.SettingsID)
	assert.Equal(t, ThemeSystemDefault, s.Theme)
	assert.Equal(t, LanguageEnglish, s.Language)
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	s := AppSettings{SettingsID: DefaultSettingsID, Theme: ThemeDark, Language: LanguageFrench, BackupEnabled: true}
	s.Normalize()
	assert.Equal(t, ThemeDark, s.Theme)
	assert.Equal(t, LanguageFrench, s.Language)
	assert.True(t, s.BackupEnabled)
}

func TestSetters(t *testing.T) {
	s := Defaults()

	require.NoError(t, s.SetTheme(ThemeDark))
	assert.Equal(t, ThemeDark, s.Theme)
	assert.Error(t, s.SetTheme(Theme("sepia")))
	assert.Equal(t, ThemeDark, s.Theme, "rejected value leaves field untouched")

	require.NoError(t, s.SetLanguage(LanguageTurkish))
	assert.Error(t, s.SetLanguage(Language("de")))

	hours := 12
	require.NoError(t, s.SetSyncFrequency(&hours))
	require.NotNil(t, s.SyncFrequencyHours)
	assert.Equal(t, 12, *s.SyncFrequencyHours)

	require.NoError(t, s.SetSyncFrequency(nil))
	assert.Nil(t, s.SyncFrequencyHours)

	zero := 0
	assert.Error(t, s.SetSyncFrequency(&zero))
}
