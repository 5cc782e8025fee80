package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconWelcome = "🎉"
	IconSuccess = "✅"
	IconError   = "❌"
)

// Window sizing
const (
	WindowWidth     float32 = 1200
	WindowHeight    float32 = 800
	WindowMinWidth  float32 = 800
	WindowMinHeight float32 = 600
)

// Layout sizing
const (
	ColumnIDWidth    float32 = 80
	ColumnNameWidth  float32 = 240
	ColumnValueWidth float32 = 140
	ColumnDateWidth  float32 = 160

	UpdateDialogWidth  float32 = 420
	SettingsEntryWidth float32 = 320
)

// Text fragments
const (
	TitleFormat       = "%s v%s"
	RepositoryURLBase = "https://github.com/"
)

// Delays
const (
	ProgressRefreshInterval = 200 * time.Millisecond
	ShutdownTimeout         = 5 * time.Second
)
