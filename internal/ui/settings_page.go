package ui

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/desktop-app/internal/config"
	"github.com/ytget/desktop-app/internal/platform"
	"github.com/ytget/desktop-app/internal/updater"
)

// SettingsForm holds the editable settings widgets
type SettingsForm struct {
	ui *RootUI

	autoCheck      *widget.Check
	themeSelect    *widget.Select
	languageSelect *widget.Select
	exportDirEntry *widget.Entry
	policySelect   *widget.Select
	ownerEntry     *widget.Entry
	repoEntry      *widget.Entry
	binaryEntry    *widget.Entry

	themeLabels    map[string]config.ThemeVariant
	languageLabels map[string]string
}

// buildSettingsPage creates the settings page UI
func (ui *RootUI) buildSettingsPage() fyne.CanvasObject {
	form := newSettingsForm(ui)
	form.loadCurrentSettings()

	t := ui.localization.GetText
	ui.settingsStatus = widget.NewLabel("")
	ui.renderSettingsStatus()

	saveBtn := widget.NewButton(t(KeySave), form.onSave)
	saveBtn.Importance = widget.HighImportance

	browseDirBtn := widget.NewButton(t(KeyBrowse), form.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, entryColumn(form.exportDirEntry))

	general := container.New(layout.NewFormLayout(),
		widget.NewLabel(""), form.autoCheck,
		widget.NewLabel(t(KeyTheme)), form.themeSelect,
		widget.NewLabel(t(KeyLanguage)), form.languageSelect,
		widget.NewLabel(t(KeyExportDirectory)), exportDirRow,
	)
	updates := container.New(layout.NewFormLayout(),
		widget.NewLabel(t(KeyVersionPolicy)), form.policySelect,
		widget.NewLabel(t(KeyRepoOwner)), entryColumn(form.ownerEntry),
		widget.NewLabel(t(KeyRepoName)), form.repoEntry,
		widget.NewLabel(t(KeyBinaryName)), form.binaryEntry,
	)

	return container.NewVScroll(container.NewVBox(
		heading(t(KeySettings)),
		bold(t(KeyGeneralSettings)),
		general,
		widget.NewSeparator(),
		bold(t(KeyUpdateSettings)),
		updates,
		container.NewHBox(saveBtn),
		widget.NewSeparator(),
		container.NewHBox(widget.NewButton(t(KeyCheckUpdatesNow), func() { ui.checkForUpdates(true) })),
		ui.settingsStatus,
	))
}

// entryColumn keeps a form entry at least SettingsEntryWidth wide
func entryColumn(obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(SettingsEntryWidth, 0))
	return container.NewStack(spacer, obj)
}

func newSettingsForm(ui *RootUI) *SettingsForm {
	t := ui.localization.GetText
	f := &SettingsForm{
		ui: ui,
		themeLabels: map[string]config.ThemeVariant{
			t(KeyThemeDark):  config.ThemeDark,
			t(KeyThemeLight): config.ThemeLight,
		},
		languageLabels: make(map[string]string),
	}

	f.autoCheck = widget.NewCheck(t(KeyAutoCheckUpdates), nil)

	f.themeSelect = widget.NewSelect([]string{t(KeyThemeDark), t(KeyThemeLight)}, nil)

	var languages []string
	for code, name := range ui.settings.GetLanguageOptions() {
		f.languageLabels[name] = code
		languages = append(languages, name)
	}
	sort.Strings(languages)
	f.languageSelect = widget.NewSelect(languages, nil)

	f.exportDirEntry = widget.NewEntry()
	f.exportDirEntry.SetPlaceHolder(t(KeyExportDirHint))

	var policies []string
	for _, p := range updater.Policies() {
		policies = append(policies, string(p))
	}
	f.policySelect = widget.NewSelect(policies, nil)

	defaults := ui.settings.DefaultUpdateSource()
	f.ownerEntry = widget.NewEntry()
	f.ownerEntry.SetPlaceHolder(defaults.Owner)
	f.repoEntry = widget.NewEntry()
	f.repoEntry.SetPlaceHolder(defaults.Repo)
	f.binaryEntry = widget.NewEntry()
	f.binaryEntry.SetPlaceHolder(defaults.Binary)
	return f
}

// loadCurrentSettings loads current settings into the UI
func (f *SettingsForm) loadCurrentSettings() {
	s := f.ui.settings
	f.autoCheck.SetChecked(s.GetAutoCheckUpdates())

	for label, variant := range f.themeLabels {
		if variant == s.GetTheme() {
			f.themeSelect.SetSelected(label)
		}
	}
	for label, code := range f.languageLabels {
		if code == s.GetLanguage() {
			f.languageSelect.SetSelected(label)
		}
	}

	f.exportDirEntry.SetText(s.GetExportDirectory())
	f.policySelect.SetSelected(string(s.GetVersionPolicy()))

	src := s.GetUpdateSource()
	f.ownerEntry.SetText(src.Owner)
	f.repoEntry.SetText(src.Repo)
	f.binaryEntry.SetText(src.Binary)
}

// onBrowseDirectory handles directory browsing
func (f *SettingsForm) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		f.exportDirEntry.SetText(uri.Path())
	}, f.ui.window)
}

// onSave persists the form and applies theme and language immediately
func (f *SettingsForm) onSave() {
	s := f.ui.settings

	s.SetAutoCheckUpdates(f.autoCheck.Checked)
	s.SetExportDirectory(f.exportDirEntry.Text)
	if dir := s.GetExportDirectory(); dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("Failed to create export directory %s: %v", dir, err)
			f.ui.setStatus(fmt.Sprintf(f.ui.localization.GetText(KeyDirectoryFailed), err))
			return
		}
	}

	if policy, err := updater.ParsePolicy(f.policySelect.Selected); err == nil {
		s.SetVersionPolicy(policy)
	}

	s.SetUpdateSource(config.UpdateSource{
		Owner:  f.ownerEntry.Text,
		Repo:   f.repoEntry.Text,
		Binary: f.binaryEntry.Text,
	})

	if variant, ok := f.themeLabels[f.themeSelect.Selected]; ok && variant != s.GetTheme() {
		f.ui.onThemeChange(variant)
	}

	log.Printf("Settings saved")
	f.ui.setStatus(f.ui.localization.GetText(KeySettingsSaved))

	// Language last: it rebuilds the page this form lives on
	if code, ok := f.languageLabels[f.languageSelect.Selected]; ok {
		f.ui.onLanguageChange(code)
	}
}
