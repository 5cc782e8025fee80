package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/desktop-app/internal/updater"
)

// ThemeVariant selects the colour scheme
type ThemeVariant string

const (
	ThemeDark  ThemeVariant = "dark"
	ThemeLight ThemeVariant = "light"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir        = "export_directory"
	KeyLanguage         = "app_language"
	KeyTheme            = "theme_variant"
	KeyAutoCheckUpdates = "auto_check_updates"
	KeyVersionPolicy    = "version_policy"
	KeyUpdateOwner      = "update_repo_owner"
	KeyUpdateRepo       = "update_repo_name"
	KeyUpdateBinary     = "update_binary_name"
)

// Default values
const (
	DefaultLanguage         = "en"
	DefaultTheme            = ThemeDark
	DefaultAutoCheckUpdates = true
	DefaultBinaryName       = "desktop-app"
)

// UpdateSource holds the release coordinates compiled into the binary; they
// are used until the user overrides them in Settings.
type UpdateSource struct {
	Owner  string
	Repo   string
	Binary string
}

// Settings manages application configuration
type Settings struct {
	app      fyne.App
	defaults UpdateSource
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults UpdateSource) *Settings {
	if defaults.Binary == "" {
		defaults.Binary = DefaultBinaryName
	}
	return &Settings{app: app, defaults: defaults}
}

// GetExportDirectory returns the configured export directory; empty means
// the platform Downloads folder
func (s *Settings) GetExportDirectory() string {
	return s.app.Preferences().String(KeyExportDir)
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, strings.TrimSpace(dir))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// GetTheme returns the configured theme variant
func (s *Settings) GetTheme() ThemeVariant {
	switch v := ThemeVariant(s.app.Preferences().String(KeyTheme)); v {
	case ThemeDark, ThemeLight:
		return v
	default:
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
}

// SetTheme sets the theme variant
func (s *Settings) SetTheme(variant ThemeVariant) {
	if variant != ThemeLight {
		variant = ThemeDark
	}
	s.app.Preferences().SetString(KeyTheme, string(variant))
}

// GetThemeOptions returns available theme variants
func (s *Settings) GetThemeOptions() []ThemeVariant {
	return []ThemeVariant{ThemeDark, ThemeLight}
}

// GetAutoCheckUpdates returns whether to check for updates on startup
func (s *Settings) GetAutoCheckUpdates() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoCheckUpdates, DefaultAutoCheckUpdates)
}

// SetAutoCheckUpdates sets whether to check for updates on startup
func (s *Settings) SetAutoCheckUpdates(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoCheckUpdates, enabled)
}

// GetVersionPolicy returns how release versions are compared
func (s *Settings) GetVersionPolicy() updater.VersionPolicy {
	policy, err := updater.ParsePolicy(s.app.Preferences().String(KeyVersionPolicy))
	if err != nil {
		s.SetVersionPolicy(updater.DefaultPolicy)
		return updater.DefaultPolicy
	}
	return policy
}

// SetVersionPolicy sets how release versions are compared
func (s *Settings) SetVersionPolicy(policy updater.VersionPolicy) {
	s.app.Preferences().SetString(KeyVersionPolicy, string(policy))
}

// GetUpdateSource returns the release coordinates, falling back to the
// compiled-in defaults for any field the user left empty
func (s *Settings) GetUpdateSource() UpdateSource {
	prefs := s.app.Preferences()
	return UpdateSource{
		Owner:  prefs.StringWithFallback(KeyUpdateOwner, s.defaults.Owner),
		Repo:   prefs.StringWithFallback(KeyUpdateRepo, s.defaults.Repo),
		Binary: prefs.StringWithFallback(KeyUpdateBinary, s.defaults.Binary),
	}
}

// SetUpdateSource stores release coordinates. Empty fields revert to defaults.
func (s *Settings) SetUpdateSource(src UpdateSource) {
	prefs := s.app.Preferences()
	set := func(key, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			prefs.RemoveValue(key)
			return
		}
		prefs.SetString(key, value)
	}
	set(KeyUpdateOwner, src.Owner)
	set(KeyUpdateRepo, src.Repo)
	set(KeyUpdateBinary, src.Binary)
}

// DefaultUpdateSource returns the compiled-in release coordinates
func (s *Settings) DefaultUpdateSource() UpdateSource {
	return s.defaults
}
