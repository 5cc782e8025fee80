package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/desktop-app/internal/config"
	"github.com/ytget/desktop-app/internal/export"
	"github.com/ytget/desktop-app/internal/model"
	"github.com/ytget/desktop-app/internal/platform"
	"github.com/ytget/desktop-app/internal/store"
	"github.com/ytget/desktop-app/internal/updater"
)

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	version      string

	store    *store.Store
	exporter *export.Exporter
	updates  *updater.Controller

	currentPage model.Page
	pageHost    *fyne.Container

	// Status line
	statusLabel  *widget.Label
	revealButton *widget.Button
	openButton   *widget.Button
	updateLabel  *widget.Label
	status       string
	lastExport   string

	// Settings page label mirroring the update phase, nil when not shown
	settingsStatus *widget.Label

	updateDialog *UpdateDialog
	userCheck    bool
	quitting     bool

	// schedule runs fn on the UI goroutine
	schedule func(fn func())
	// scheduleProgress runs a progress refresh on the UI goroutine
	scheduleProgress func(fn func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, updateSvc updater.Updater, version string) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		version:      version,
		store:        store.New(),
		currentPage:  model.PageHome,
		schedule:     fyne.Do,

		scheduleProgress: fyne.Do,
	}
	ui.status = localization.GetText(KeyReady)
	ui.exporter = export.NewExporter(export.WithDirectoryFunc(ui.exportDirectory))
	ui.updates = updater.NewController(updateSvc, ui.notifyUpdate)
	ui.updateDialog = NewUpdateDialog(ui)

	app.Settings().SetTheme(NewCompactTheme(settings.GetTheme()))

	window.SetTitle(ui.windowTitle())
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetCloseIntercept(ui.onQuit)

	ui.setupUI()
	log.Printf("RootUI initialized: version=%s language=%s", version, localization.GetCurrentLanguage())
	return ui
}

// StartupCheck runs the update check configured to happen on launch
func (ui *RootUI) StartupCheck() {
	if !ui.settings.GetAutoCheckUpdates() {
		log.Printf("Automatic update check disabled")
		return
	}
	ui.checkForUpdates(false)
}

func (ui *RootUI) windowTitle() string {
	return fmt.Sprintf(TitleFormat, ui.localization.GetText(KeyAppTitle), ui.version)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.statusLabel = widget.NewLabel(ui.status)
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.revealButton = widget.NewButton(ui.localization.GetText(KeyShowInFolder), ui.onRevealExport)
	ui.revealButton.Importance = widget.LowImportance
	ui.revealButton.Hide()
	ui.openButton = widget.NewButton(ui.localization.GetText(KeyOpenFile), ui.onOpenExport)
	ui.openButton.Importance = widget.LowImportance
	ui.openButton.Hide()
	ui.updateLabel = widget.NewLabel("")

	exportActions := container.NewHBox(ui.revealButton, ui.openButton)
	statusBar := container.NewBorder(nil, nil, nil, ui.updateLabel,
		container.NewBorder(nil, nil, nil, exportActions, ui.statusLabel))

	ui.pageHost = container.NewStack()

	bottom := container.NewVBox(widget.NewSeparator(), statusBar)

	// Fyne has no minimum window size; the content's MinSize enforces it
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	content := container.NewStack(minSize, container.NewBorder(nil, bottom, nil, nil, ui.pageHost))
	ui.window.SetContent(content)
	ui.showPage(ui.currentPage)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	exportItem := fyne.NewMenuItem(t(KeyExportToExcel), ui.onExport)
	quitItem := fyne.NewMenuItem(t(KeyQuit), ui.onQuit)
	quitItem.IsQuit = true

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile),
			exportItem,
			fyne.NewMenuItemSeparator(),
			quitItem,
		),
		fyne.NewMenu(t(KeyView),
			fyne.NewMenuItem(t(KeyHome), func() { ui.showPage(model.PageHome) }),
			fyne.NewMenuItem(t(KeyDataTable), func() { ui.showPage(model.PageDataTable) }),
			fyne.NewMenuItem(t(KeySettings), func() { ui.showPage(model.PageSettings) }),
		),
		fyne.NewMenu(t(KeyHelp),
			fyne.NewMenuItem(t(KeyCheckUpdates), func() { ui.checkForUpdates(true) }),
			fyne.NewMenuItem(t(KeyAbout), func() { ui.showPage(model.PageAbout) }),
		),
	)

	ui.window.SetMainMenu(mainMenu)
}

// showPage replaces the central content with the given page
func (ui *RootUI) showPage(page model.Page) {
	log.Printf("Showing page: %s", page)
	ui.currentPage = page
	ui.settingsStatus = nil

	var content fyne.CanvasObject
	switch page {
	case model.PageDataTable:
		content = ui.buildDataTablePage()
	case model.PageSettings:
		content = ui.buildSettingsPage()
	case model.PageAbout:
		content = ui.buildAboutPage()
	default:
		ui.currentPage = model.PageHome
		content = ui.buildHomePage()
	}

	ui.pageHost.Objects = []fyne.CanvasObject{container.NewPadded(content)}
	ui.pageHost.Refresh()
}

// refreshDataViews rebuilds pages that display the record store
func (ui *RootUI) refreshDataViews() {
	if ui.currentPage == model.PageHome || ui.currentPage == model.PageDataTable {
		ui.showPage(ui.currentPage)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	if langCode == ui.localization.GetCurrentLanguage() {
		return
	}
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.windowTitle())
	ui.createMenu()
	ui.revealButton.SetText(ui.localization.GetText(KeyShowInFolder))
	ui.openButton.SetText(ui.localization.GetText(KeyOpenFile))
	ui.showPage(ui.currentPage)
	ui.renderUpdateState()
}

// onThemeChange applies a theme variant
func (ui *RootUI) onThemeChange(variant config.ThemeVariant) {
	ui.settings.SetTheme(variant)
	ui.app.Settings().SetTheme(NewCompactTheme(variant))
}

// setStatus shows a message in the status line
func (ui *RootUI) setStatus(message string) {
	ui.status = message
	ui.statusLabel.SetText(message)
	if ui.lastExport == "" {
		ui.revealButton.Hide()
		ui.openButton.Hide()
	}
	ui.renderSettingsStatus()
}

// onAddSampleData appends a batch of sample rows
func (ui *RootUI) onAddSampleData() {
	ui.store.AppendSampleRows()
	log.Printf("Sample data added: total=%d", ui.store.Count())
	ui.lastExport = ""
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeySampleAdded), store.SampleBatchSize))
	ui.refreshDataViews()
}

// onClearData removes all rows
func (ui *RootUI) onClearData() {
	ui.store.Clear()
	log.Printf("Data cleared")
	ui.lastExport = ""
	ui.setStatus(ui.localization.GetText(KeyDataCleared))
	ui.refreshDataViews()
}

// exportDirectory returns the configured export directory or the platform default
func (ui *RootUI) exportDirectory() string {
	if dir := ui.settings.GetExportDirectory(); dir != "" {
		return dir
	}
	return platform.DownloadsDirOrCurrent()
}

// onExport writes the current rows to a spreadsheet
func (ui *RootUI) onExport() {
	path, err := ui.exporter.Export(ui.store.All())
	if err != nil {
		log.Printf("Export failed: %v", err)
		ui.lastExport = ""
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyExportFailed), err))
		return
	}

	log.Printf("Exported %d rows to %s", ui.store.Count(), path)
	ui.lastExport = path
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyExportedTo), path))
	ui.revealButton.Show()
	ui.openButton.Show()
}

// onRevealExport shows the last exported file in the system file manager
func (ui *RootUI) onRevealExport() {
	if ui.lastExport == "" {
		return
	}
	if err := platform.OpenFileInManager(ui.lastExport); err != nil {
		log.Printf("Error revealing file %s: %v", ui.lastExport, err)
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyErrorOpening), err))
	}
}

// onOpenExport opens the last exported file with the default application
func (ui *RootUI) onOpenExport() {
	if ui.lastExport == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(ui.lastExport); err != nil {
		log.Printf("Error opening file %s: %v", ui.lastExport, err)
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyErrorOpening), err))
	}
}

// checkForUpdates starts a check. userInitiated controls whether "up to date"
// and check errors are surfaced beyond the status line.
func (ui *RootUI) checkForUpdates(userInitiated bool) {
	if err := ui.updates.StartCheck(); err != nil {
		ui.reportUpdateError(err)
		return
	}
	ui.userCheck = userInitiated
	ui.renderUpdateState()
}

// onApplyUpdate starts downloading the available release
func (ui *RootUI) onApplyUpdate() {
	if err := ui.updates.StartApply(); err != nil {
		ui.reportUpdateError(err)
		return
	}
	ui.renderUpdateState()
	ui.watchProgress()
}

// onRetryUpdate re-runs the failed operation
func (ui *RootUI) onRetryUpdate() {
	failed := ui.updates.State().FailedOp
	if err := ui.updates.Retry(); err != nil {
		ui.reportUpdateError(err)
		return
	}
	ui.renderUpdateState()
	if failed == model.UpdateOpApply {
		ui.watchProgress()
	}
}

// onDismissUpdate closes the update dialog and returns to Idle
func (ui *RootUI) onDismissUpdate() {
	if err := ui.updates.Dismiss(); err != nil {
		ui.reportUpdateError(err)
		return
	}
	ui.renderUpdateState()
}

func (ui *RootUI) reportUpdateError(err error) {
	log.Printf("Update action rejected: %v", err)
	if errors.Is(err, updater.ErrBusy) {
		ui.setStatus(ui.localization.GetText(KeyUpdateBusy))
		return
	}
	ui.setStatus(err.Error())
}

// notifyUpdate is called from update workers
func (ui *RootUI) notifyUpdate() {
	ui.schedule(ui.pollUpdates)
}

// pollUpdates applies a finished worker result on the UI goroutine
func (ui *RootUI) pollUpdates() {
	if !ui.updates.Poll() {
		return
	}
	state := ui.updates.State()
	if state.Phase == model.UpdatePhaseIdle && ui.userCheck {
		ui.setStatus(ui.localization.GetText(KeyUpToDate))
	}
	ui.renderUpdateState()
}

// updateStatusText describes an update state for the status line
func (ui *RootUI) updateStatusText(state model.UpdateState) string {
	t := ui.localization.GetText
	switch state.Phase {
	case model.UpdatePhaseChecking:
		return t(KeyChecking)
	case model.UpdatePhaseAvailable:
		return fmt.Sprintf(t(KeyAvailable), state.Version)
	case model.UpdatePhaseDownloading:
		return t(KeyDownloading)
	case model.UpdatePhaseDownloaded:
		return t(KeyDownloaded)
	case model.UpdatePhaseError:
		if state.FailedOp == model.UpdateOpApply {
			return t(KeyApplyFailed)
		}
		return t(KeyCheckFailed)
	default:
		return ""
	}
}

// renderUpdateState syncs the status line, settings page and dialog with the controller
func (ui *RootUI) renderUpdateState() {
	state := ui.updates.State()
	ui.updateLabel.SetText(ui.updateStatusText(state))
	ui.renderSettingsStatus()

	var showDialog bool
	switch {
	case state.Phase == model.UpdatePhaseAvailable, state.Phase == model.UpdatePhaseDownloading:
		showDialog = true
	case state.Phase.IsTerminal():
		// Failed background checks stay in the status line only
		showDialog = state.Phase == model.UpdatePhaseDownloaded || state.FailedOp == model.UpdateOpApply || ui.userCheck
	}
	if showDialog {
		ui.updateDialog.Show(state)
	} else {
		ui.updateDialog.Hide()
	}
}

// renderSettingsStatus updates the status label of the Settings page
func (ui *RootUI) renderSettingsStatus() {
	if ui.settingsStatus == nil {
		return
	}
	text := ui.updateStatusText(ui.updates.State())
	if text == "" {
		text = ui.status
	}
	ui.settingsStatus.SetText(fmt.Sprintf(ui.localization.GetText(KeyUpdateStatus), text))
}

// onRestart relaunches the replaced executable and quits
func (ui *RootUI) onRestart() {
	exe, err := platform.ExecutablePath()
	if err == nil {
		err = platform.Relaunch(exe, os.Args[1:])
	}
	if err != nil {
		log.Printf("Restart failed: %v", err)
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyRestartFailed), err))
		return
	}
	log.Printf("Relaunched %s", exe)
	ui.onQuit()
}

// onQuit stops update workers and quits the application
func (ui *RootUI) onQuit() {
	if ui.quitting {
		return
	}
	ui.quitting = true
	log.Printf("Shutting down")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := ui.updates.Shutdown(ctx); err != nil {
			log.Printf("Update worker did not stop in time: %v", err)
		}
		ui.schedule(ui.app.Quit)
	}()
}
