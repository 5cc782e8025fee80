package ui

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/desktop-app/internal/model"
)

// Data table columns
const (
	columnID = iota
	columnName
	columnValue
	columnDate
	columnCount
)

// buildHomePage shows quick actions and record statistics
func (ui *RootUI) buildHomePage() fyne.CanvasObject {
	t := ui.localization.GetText

	addBtn := widget.NewButton(t(KeyAddSampleData), ui.onAddSampleData)
	addBtn.Importance = widget.HighImportance
	actions := container.NewHBox(
		addBtn,
		widget.NewButton(t(KeyOpenDataTable), func() { ui.showPage(model.PageDataTable) }),
		widget.NewButton(t(KeyCheckUpdates), func() { ui.checkForUpdates(true) }),
	)

	lastUpdated := t(KeyNever)
	if ts := ui.store.UpdatedAt(); !ts.IsZero() {
		lastUpdated = ts.Format(model.TimestampLayout)
	}
	stats := container.NewGridWithColumns(2,
		widget.NewLabel(t(KeyTotalRecords)), widget.NewLabel(strconv.Itoa(ui.store.Count())),
		widget.NewLabel(t(KeyLastUpdated)), widget.NewLabel(lastUpdated),
		widget.NewLabel(t(KeyVersion)), widget.NewLabel(ui.version),
	)

	return container.NewVBox(
		heading(t(KeyWelcome)),
		actions,
		widget.NewSeparator(),
		heading(t(KeyQuickStats)),
		stats,
	)
}

// buildDataTablePage shows the records with add, clear and export actions
func (ui *RootUI) buildDataTablePage() fyne.CanvasObject {
	t := ui.localization.GetText

	actions := container.NewHBox(
		widget.NewButton(t(KeyAddSampleData), ui.onAddSampleData),
		widget.NewButton(t(KeyClearData), ui.onClearData),
		widget.NewButton(t(KeyExportToExcel), ui.onExport),
	)

	table := widget.NewTable(
		func() (int, int) { return ui.store.Count(), columnCount },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			rows := ui.store.All()
			if id.Row < 0 || id.Row >= len(rows) {
				return
			}
			obj.(*widget.Label).SetText(cellText(rows[id.Row], id.Col))
		},
	)
	headers := []string{t(KeyColumnID), t(KeyColumnName), t(KeyColumnValue), t(KeyColumnDate)}
	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject { return bold("") }
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(headers) {
			obj.(*widget.Label).SetText(headers[id.Col])
		}
	}
	table.SetColumnWidth(columnID, ColumnIDWidth)
	table.SetColumnWidth(columnName, ColumnNameWidth)
	table.SetColumnWidth(columnValue, ColumnValueWidth)
	table.SetColumnWidth(columnDate, ColumnDateWidth)

	top := container.NewVBox(heading(t(KeyDataTable)), actions, widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, table)
}

// cellText formats a row field for the table view
func cellText(row model.Row, col int) string {
	switch col {
	case columnID:
		return strconv.Itoa(row.ID)
	case columnName:
		return row.Name
	case columnValue:
		return row.FormattedValue()
	case columnDate:
		return row.FormattedDate()
	default:
		return ""
	}
}

// buildAboutPage shows version, features and the repository link
func (ui *RootUI) buildAboutPage() fyne.CanvasObject {
	t := ui.localization.GetText

	title := heading(t(KeyAboutTitle))
	title.Alignment = fyne.TextAlignCenter
	version := widget.NewLabel(fmt.Sprintf("%s %s", t(KeyVersion), ui.version))
	version.Alignment = fyne.TextAlignCenter
	builtWith := widget.NewLabel(t(KeyBuiltWith))
	builtWith.Alignment = fyne.TextAlignCenter

	features := container.NewVBox(
		bold(t(KeyFeatures)),
		widget.NewLabel(t(KeyFeatureGUI)),
		widget.NewLabel(t(KeyFeatureExport)),
		widget.NewLabel(t(KeyFeatureUpdate)),
		widget.NewLabel(t(KeyFeatureUI)),
	)

	objects := []fyne.CanvasObject{title, version, builtWith, widget.NewSeparator(), container.NewCenter(features)}
	if link := ui.repositoryURL(); link != nil {
		objects = append(objects, container.NewCenter(widget.NewHyperlink(t(KeyVisitRepo), link)))
	}
	return container.NewVBox(objects...)
}

// repositoryURL returns the project page of the configured update source
func (ui *RootUI) repositoryURL() *url.URL {
	src := ui.settings.GetUpdateSource()
	if src.Owner == "" || src.Repo == "" {
		return nil
	}
	link, err := url.Parse(RepositoryURLBase + src.Owner + "/" + src.Repo)
	if err != nil {
		log.Printf("Invalid repository URL for %s/%s: %v", src.Owner, src.Repo, err)
		return nil
	}
	return link
}
