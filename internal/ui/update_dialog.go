package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/desktop-app/internal/model"
)

// UpdateDialog renders the Available, Downloading, Downloaded and Error phases
type UpdateDialog struct {
	ui       *RootUI
	dialog   *dialog.CustomDialog
	body     *fyne.Container
	progress *widget.ProgressBar
	phase    model.UpdatePhase
	visible  bool
}

// NewUpdateDialog creates the dialog; it is shown on demand
func NewUpdateDialog(ui *RootUI) *UpdateDialog {
	d := &UpdateDialog{
		ui:       ui,
		body:     container.NewVBox(),
		progress: widget.NewProgressBar(),
	}
	d.dialog = dialog.NewCustomWithoutButtons(ui.localization.GetText(KeyUpdateAvailable), d.body, ui.window)
	d.dialog.Resize(fyne.NewSize(UpdateDialogWidth, 0))
	return d
}

// Visible reports whether the dialog is on screen
func (d *UpdateDialog) Visible() bool {
	return d.visible
}

// Phase returns the phase the dialog currently renders
func (d *UpdateDialog) Phase() model.UpdatePhase {
	return d.phase
}

// Show renders state and displays the dialog
func (d *UpdateDialog) Show(state model.UpdateState) {
	t := d.ui.localization.GetText
	prev := d.phase
	d.phase = state.Phase

	header := container.NewHBox(widget.NewLabel(IconWelcome), heading(t(KeyNewVersionHeading)))
	versions := container.NewGridWithColumns(2,
		widget.NewLabel(t(KeyCurrentVersion)), bold(d.ui.version),
		widget.NewLabel(t(KeyNewVersion)), bold(state.Version),
	)
	objects := []fyne.CanvasObject{header, widget.NewSeparator(), versions}

	var buttons []fyne.CanvasObject
	switch state.Phase {
	case model.UpdatePhaseAvailable:
		objects = append(objects, wrapped(t(KeyUpdatePrompt)))
		updateBtn := widget.NewButton(t(KeyUpdateNow), d.ui.onApplyUpdate)
		updateBtn.Importance = widget.HighImportance
		buttons = []fyne.CanvasObject{
			widget.NewButton(t(KeyLater), d.ui.onDismissUpdate),
			updateBtn,
		}

	case model.UpdatePhaseDownloading:
		if prev != model.UpdatePhaseDownloading {
			d.progress.SetValue(0)
		}
		objects = append(objects,
			widget.NewLabel(t(KeyDownloading)),
			d.progress,
			wrapped(t(KeyDownloadWait)),
		)

	case model.UpdatePhaseDownloaded:
		objects = append(objects,
			widget.NewLabel(IconSuccess+" "+t(KeyDownloadSuccess)),
			wrapped(t(KeyRestartPrompt)),
		)
		restartBtn := widget.NewButton(t(KeyRestartNow), d.ui.onRestart)
		restartBtn.Importance = widget.HighImportance
		buttons = []fyne.CanvasObject{
			widget.NewButton(t(KeyContinue), d.ui.onDismissUpdate),
			restartBtn,
		}

	case model.UpdatePhaseError:
		objects = []fyne.CanvasObject{
			heading(IconError + " " + t(KeyUpdateFailed)),
			wrapped(fmt.Sprintf(t(KeyErrorPrefix), state.Message)),
		}
		buttons = []fyne.CanvasObject{
			widget.NewButton(t(KeyClose), d.ui.onDismissUpdate),
			widget.NewButton(t(KeyRetry), d.ui.onRetryUpdate),
		}
	}

	d.body.Objects = objects
	d.body.Refresh()
	d.dialog.SetButtons(buttons)
	if !d.visible {
		d.visible = true
		d.dialog.Show()
	}
}

// Hide removes the dialog from screen
func (d *UpdateDialog) Hide() {
	d.phase = ""
	if !d.visible {
		return
	}
	d.visible = false
	d.dialog.Hide()
}

// SetProgress updates the download progress bar
func (d *UpdateDialog) SetProgress(done, total int64) {
	if total <= 0 {
		return
	}
	d.progress.SetValue(float64(done) / float64(total))
}

// watchProgress mirrors the controller's download progress until the
// Downloading phase ends or the app quits. The returned channel is closed
// when the watcher exits.
func (ui *RootUI) watchProgress() <-chan struct{} {
	ticker := time.NewTicker(ProgressRefreshInterval)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
			case <-ui.updates.Done():
				return
			}

			done, total := ui.updates.Progress()
			keep := make(chan bool, 1)
			ui.scheduleProgress(func() {
				if ui.quitting || ui.updates.State().Phase != model.UpdatePhaseDownloading {
					keep <- false
					return
				}
				ui.updateDialog.SetProgress(done, total)
				keep <- true
			})

			// the UI loop may never run the refresh once quit has started
			select {
			case ok := <-keep:
				if !ok {
					return
				}
			case <-ui.updates.Done():
				return
			}
		}
	}()
	return stopped
}

func heading(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	l.SizeName = theme.SizeNameSubHeadingText
	return l
}

func bold(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	return l
}

func wrapped(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}
