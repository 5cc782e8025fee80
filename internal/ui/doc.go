// Package ui contains the Fyne-based desktop user interface for the application.
// It owns the record store and the update controller, renders the Home, Data
// Table, Settings and About pages, and shows the update dialog. All UI strings
// are localized via Localization.
package ui
